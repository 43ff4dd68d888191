/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

func newTestDB(q *fakeQuerier) *DB {
	return &DB{conn: q, logger: logger.NewTestLogger()}
}

func interfaceRow(id, deviceID int64, name, mac string) []any {
	return []any{id, deviceID, name, "", mac, "up", int64(1_000_000_000), 1500}
}

func TestLatestStatsSnapshot_PairsNullStats(t *testing.T) {
	ts := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	q := &fakeQuerier{rows: [][]any{
		append(interfaceRow(1, 10, "Gi0/1", "aa:bb:cc:00:00:01"), int64(500), ts, int64(800), int64(1200)),
		append(interfaceRow(2, 10, "Gi0/2", "aa:bb:cc:00:00:02"), nil, nil, int64(0), int64(0)),
	}}

	snaps, err := newTestDB(q).LatestStatsSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	require.NotNil(t, snaps[0].Stats)
	assert.Equal(t, models.InterfaceStat{ID: 500, InterfaceID: 1, Timestamp: ts, InBps: 800, OutBps: 1200}, *snaps[0].Stats)
	assert.Equal(t, "Gi0/1", snaps[0].Interface.InterfaceName)

	assert.Nil(t, snaps[1].Stats)
	assert.Equal(t, "aa:bb:cc:00:00:02", snaps[1].Interface.MACAddress)

	assert.Contains(t, q.queries[0], "LEFT JOIN LATERAL")
}

func TestRecentAlerts_PassesLimit(t *testing.T) {
	newer := time.Date(2025, time.March, 1, 10, 0, 2, 0, time.UTC)
	older := newer.Add(-time.Second)
	device := int64(4)

	q := &fakeQuerier{rows: [][]any{
		{int64(2), device, nil, "interface_down", "critical", "Gi0/1 down", newer, false},
		{int64(1), device, nil, "interface_down", "warning", "Gi0/2 flapping", older, true},
	}}

	alerts, err := newTestDB(q).RecentAlerts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, []any{10}, q.args[0])
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, int64(4), *alerts[0].DeviceID)
	assert.Nil(t, alerts[0].InterfaceID)
	assert.True(t, alerts[1].Acknowledged)
}

func TestRecentAlerts_DefaultLimit(t *testing.T) {
	q := &fakeQuerier{}

	alerts, err := newTestDB(q).RecentAlerts(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.NotNil(t, alerts)
	assert.Equal(t, []any{models.DefaultAlertLimit}, q.args[0])
}

func TestQueryErrorsAreWrapped(t *testing.T) {
	q := &fakeQuerier{queryErr: errors.New("connection reset")}

	_, err := newTestDB(q).AllTopologyLinks(context.Background())
	assert.ErrorIs(t, err, ErrFailedToQuery)
}

func TestGetDevice_NotFound(t *testing.T) {
	_, err := newTestDB(&fakeQuerier{}).GetDevice(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDevice(t *testing.T) {
	assert.ErrorIs(t, newTestDB(&fakeQuerier{affected: 0}).DeleteDevice(context.Background(), 3), ErrNotFound)
	assert.NoError(t, newTestDB(&fakeQuerier{affected: 1}).DeleteDevice(context.Background(), 3))
}

func TestUpdateDeviceStatus_RejectsUnknownStatus(t *testing.T) {
	q := &fakeQuerier{affected: 1}

	err := newTestDB(q).UpdateDeviceStatus(context.Background(), 1, "rebooting", time.Now())
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, q.queries)
}

func TestBuildDeviceArgs(t *testing.T) {
	_, err := buildDeviceArgs(&models.Device{DeviceType: "switch"})
	assert.ErrorIs(t, err, ErrIPAddressRequired)

	_, err = buildDeviceArgs(&models.Device{IPAddress: "10.0.0.1"})
	assert.ErrorIs(t, err, ErrDeviceTypeRequired)

	args, err := buildDeviceArgs(&models.Device{IPAddress: "10.0.0.1", DeviceType: "router"})
	require.NoError(t, err)
	require.Len(t, args, 13)

	assert.Nil(t, args[0])
	assert.Equal(t, "10.0.0.1", args[1])
	assert.Equal(t, "Cisco", args[4])
	assert.Equal(t, "unknown", args[9])
	assert.Equal(t, 22, args[12])
}

func TestBuildAlertArgs(t *testing.T) {
	_, err := buildAlertArgs(&models.Alert{Severity: "major"})
	assert.ErrorIs(t, err, ErrInvalidSeverity)

	args, err := buildAlertArgs(&models.Alert{Message: "link down"})
	require.NoError(t, err)
	assert.Equal(t, "info", args[3])

	ts, ok := args[5].(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestBuildMacChangeArgs(t *testing.T) {
	_, err := buildMacChangeArgs(&models.MacChangeLog{OldMAC: "a", NewMAC: "b"})
	assert.ErrorIs(t, err, ErrDeviceIDRequired)

	_, err = buildMacChangeArgs(&models.MacChangeLog{DeviceID: 1, NewMAC: "b"})
	assert.ErrorIs(t, err, ErrMACRequired)
}

func TestGroupStatsByInterface(t *testing.T) {
	ifaces := []models.Interface{{ID: 1}, {ID: 2}}
	stats := []models.InterfaceStat{{ID: 10, InterfaceID: 1}, {ID: 9, InterfaceID: 1}}

	series := groupStatsByInterface(ifaces, stats)
	require.Len(t, series, 2)
	assert.Len(t, series[0].Stats, 2)
	assert.NotNil(t, series[1].Stats)
	assert.Empty(t, series[1].Stats)
}

func TestBuildConnURL(t *testing.T) {
	t.Parallel()

	u, err := buildConnURL(&models.PostgresDatabase{
		Host:     "pg",
		Database: "netwatch",
		Username: "nw",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "pg:5432", u.Host)
	assert.Equal(t, "/netwatch", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "netwatch", u.Query().Get("application_name"))

	pass, _ := u.User.Password()
	assert.Equal(t, "secret", pass)
}

func TestBuildConnURL_TLS(t *testing.T) {
	t.Parallel()

	tls := &models.TLSConfig{CertFile: "client.crt", KeyFile: "client.key", CAFile: "/etc/ssl/ca.crt"}

	u, err := buildConnURL(&models.PostgresDatabase{Host: "pg", CertDir: "/etc/netwatch/pg", TLS: tls})
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "verify-full", q.Get("sslmode"))
	assert.Equal(t, "/etc/netwatch/pg/client.crt", q.Get("sslcert"))
	assert.Equal(t, "/etc/netwatch/pg/client.key", q.Get("sslkey"))
	assert.Equal(t, "/etc/ssl/ca.crt", q.Get("sslrootcert"))

	_, err = buildConnURL(&models.PostgresDatabase{Host: "pg", SSLMode: "disable", TLS: tls})
	assert.ErrorIs(t, err, ErrTLSDisabled)

	_, err = buildConnURL(&models.PostgresDatabase{Host: "pg", TLS: &models.TLSConfig{CertFile: "c"}})
	assert.ErrorIs(t, err, ErrTLSIncomplete)

	_, err = buildConnURL(&models.PostgresDatabase{})
	assert.ErrorIs(t, err, ErrHostRequired)
}

func TestResolveSSLMode_RuntimeParamFallback(t *testing.T) {
	t.Parallel()

	mode, err := resolveSSLMode(&models.PostgresDatabase{ExtraRuntimeParams: map[string]string{"sslmode": "Require"}})
	require.NoError(t, err)
	assert.Equal(t, "require", mode)
}

func TestSplitSQLStatements(t *testing.T) {
	content := `
-- leading comment; with a semicolon
CREATE TABLE a (id INT, note TEXT DEFAULT 'x;y');
/* block; comment */
CREATE FUNCTION f() RETURNS trigger AS $body$
BEGIN
  NEW.updated := now();
  RETURN NEW;
END;
$body$ LANGUAGE plpgsql;
INSERT INTO a VALUES ($1, 'it''s')`

	statements := splitSQLStatements(content)
	require.Len(t, statements, 3)

	assert.Equal(t, "CREATE TABLE a (id INT, note TEXT DEFAULT 'x;y')", statements[0])
	assert.Contains(t, statements[1], "RETURN NEW;\nEND;\n$body$ LANGUAGE plpgsql")
	assert.Equal(t, "INSERT INTO a VALUES ($1, 'it''s')", statements[2])
}

func TestEmbeddedMigrationParses(t *testing.T) {
	content, err := migrationsFS.ReadFile("migrations/001_init.up.sql")
	require.NoError(t, err)

	statements := splitSQLStatements(string(content))
	assert.Len(t, statements, 11)
	assert.Contains(t, statements[0], "CREATE TABLE IF NOT EXISTS sites")
}

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_alerts.up.sql":   {Data: []byte("SELECT 1")},
		"migrations/001_init.up.sql":     {Data: []byte("SELECT 1")},
		"migrations/001_init.down.sql":   {Data: []byte("SELECT 1")},
		"migrations/003_links.up.sql":    {Data: []byte("SELECT 1")},
		"migrations/notes/readme.up.sql": {Data: []byte("")},
	}

	names, err := pendingMigrations(fsys, map[string]struct{}{"002": {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.up.sql", "003_links.up.sql"}, names)
	assert.Equal(t, "003", extractVersion("003_links.up.sql"))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(fmt.Errorf("%w: %q", ErrInvalidStatus, "degraded")))
	assert.True(t, IsValidationError(ErrMACRequired))
	assert.False(t, IsValidationError(ErrNotFound))
	assert.False(t, IsValidationError(fmt.Errorf("%w: boom", ErrFailedToQuery)))
}
