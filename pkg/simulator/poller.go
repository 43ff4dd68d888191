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

package simulator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/events"
	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const (
	maxConcurrentPolls = 8
	publishTimeout     = 2 * time.Second
)

type counterSample struct {
	in  uint64
	out uint64
}

type deviceState struct {
	agent *Agent
	// previous octet counters keyed by interface name
	prev map[string]counterSample
}

type linkKey struct {
	src, dst         int64
	srcPort, dstPort string
}

// Poller walks every device's agent once per interval and writes the
// results: interface rows and stats, interface-down and MAC change alerts,
// MAC change logs, device status and LLDP topology links.
type Poller struct {
	db        db.Service
	publisher events.Publisher
	interval  time.Duration
	seed      uint64
	clock     clock.Clock
	logger    logger.Logger

	mu          sync.Mutex
	states      map[int64]*deviceState
	links       map[linkKey]struct{}
	linksLoaded bool
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) PollerOption {
	return func(p *Poller) {
		p.clock = c
	}
}

// WithPublisher sets the publisher for device_update, new_alert and mac_change events.
func WithPublisher(pub events.Publisher) PollerOption {
	return func(p *Poller) {
		if pub != nil {
			p.publisher = pub
		}
	}
}

// NewPoller returns a poller. A zero seed picks a random one.
func NewPoller(database db.Service, cfg *models.SimulatorConfig, log logger.Logger, opts ...PollerOption) *Poller {
	interval := time.Duration(cfg.Interval)
	if interval <= 0 {
		interval = 30 * time.Second
	}

	seed := uint64(cfg.Seed) //nolint:gosec // seed only drives simulated values
	if seed == 0 {
		seed = rand.Uint64()
	}

	p := &Poller{
		db:        database,
		publisher: events.NopPublisher{},
		interval:  interval,
		seed:      seed,
		clock:     clock.New(),
		logger:    log,
		states:    make(map[int64]*deviceState),
		links:     make(map[linkKey]struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Interval returns the polling period.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Run polls immediately and then once per interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	ticker := p.clock.Ticker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Dur("interval", p.interval).Msg("Simulated poller started")

	p.runTick(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("Simulated poller stopped")

			return nil
		case <-ticker.C:
			p.runTick(ctx)
		}
	}
}

func (p *Poller) runTick(ctx context.Context) {
	if err := p.Tick(ctx); err != nil {
		p.logger.Error().Err(err).Msg("Simulated poll failed")
	}
}

// Tick polls every device once. A failure on one device is logged and does
// not stop the others.
func (p *Poller) Tick(ctx context.Context) error {
	devices, err := p.db.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	if err := p.loadLinks(ctx); err != nil {
		return err
	}

	states := p.syncAgents(devices)

	byIP := make(map[string]models.Device, len(devices))
	for _, d := range devices {
		byIP[d.IPAddress] = d
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPolls)

	for _, device := range devices {
		state := states[device.ID]

		g.Go(func() error {
			outcome, err := p.pollDevice(gctx, device, state, byIP)
			if err != nil {
				outcome = outcomeFailed

				p.logger.Warn().Err(err).Int64("device_id", device.ID).Msg("Device poll failed")
			}

			recordPoll(gctx, outcome)

			return nil
		})
	}

	return g.Wait()
}

func (p *Poller) loadLinks(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.linksLoaded {
		return nil
	}

	links, err := p.db.AllTopologyLinks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load topology links: %w", err)
	}

	for _, l := range links {
		p.links[linkKey{src: l.SrcDeviceID, dst: l.DstDeviceID, srcPort: l.SrcInterface, dstPort: l.DstInterface}] = struct{}{}
	}

	p.linksLoaded = true

	return nil
}

// syncAgents creates agents for new devices, drops agents of deleted ones
// and wires the LLDP ring: the last port of each device faces the first
// port of the next device by id.
func (p *Poller) syncAgents(devices []models.Device) map[int64]*deviceState {
	p.mu.Lock()
	defer p.mu.Unlock()

	sorted := append([]models.Device(nil), devices...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	live := make(map[int64]*deviceState, len(sorted))

	for _, d := range sorted {
		state, ok := p.states[d.ID]
		if !ok {
			rng := rand.New(rand.NewPCG(p.seed, uint64(d.ID))) //nolint:gosec // simulated values
			state = &deviceState{agent: NewAgent(d.ID, rng), prev: make(map[string]counterSample)}
		}

		state.agent.ClearNeighbors()
		live[d.ID] = state
	}

	if len(sorted) > 1 {
		for i, d := range sorted {
			peer := sorted[(i+1)%len(sorted)]
			peerAgent := live[peer.ID].agent

			live[d.ID].agent.SetNeighbor(defaultInterfaceCount, peer, peerAgent.InterfaceName(1))
		}
	}

	p.states = live

	out := make(map[int64]*deviceState, len(live))
	for id, s := range live {
		out[id] = s
	}

	return out
}

func (p *Poller) pollDevice(
	ctx context.Context, device models.Device, state *deviceState, byIP map[string]models.Device) (string, error) {
	agent := state.agent
	agent.Advance(p.interval)

	now := p.clock.Now().UTC()

	descr := agent.Walk(oidIfDescr)
	if len(descr) == 0 {
		p.logger.Info().Str("device", device.DisplayName()).Msg("No ifDescr response, marking device down")

		return outcomeDown, p.setDeviceStatus(ctx, device, models.DeviceStatusDown, time.Time{})
	}

	rows := ParseInterfaceTable(descr,
		agent.Walk(oidIfOperStatus),
		agent.Walk(oidIfInOctets),
		agent.Walk(oidIfOutOctets),
		agent.Walk(oidIfPhysAddress))

	existing, err := p.db.ListDeviceInterfaces(ctx, device.ID)
	if err != nil {
		return "", fmt.Errorf("failed to list interfaces of device %d: %w", device.ID, err)
	}

	byName := make(map[string]models.Interface, len(existing))
	for _, iface := range existing {
		byName[iface.InterfaceName] = iface
	}

	for _, row := range rows {
		if err := p.recordInterface(ctx, device, state, row, byName, now); err != nil {
			return "", err
		}
	}

	neighbors := ParseLLDPNeighbors(
		agent.Walk(oidLLDPRemSysName),
		agent.Walk(oidLLDPRemPortDesc),
		agent.Walk(oidLLDPRemManAddr))

	for _, n := range neighbors {
		if err := p.ensureLink(ctx, device, agent.InterfaceName(n.LocalIndex), n, byIP, now); err != nil {
			return "", err
		}
	}

	return outcomeUp, p.setDeviceStatus(ctx, device, models.DeviceStatusUp, now)
}

func (p *Poller) recordInterface(ctx context.Context, device models.Device, state *deviceState,
	row InterfaceRow, byName map[string]models.Interface, now time.Time) error {
	iface, known := byName[row.Name]

	if !known {
		created, err := p.db.CreateInterface(ctx, &models.Interface{
			DeviceID:      device.ID,
			InterfaceName: row.Name,
			MACAddress:    row.MACAddress,
			Status:        row.OperStatus,
			SpeedBps:      defaultSpeedBps,
		})
		if err != nil {
			return fmt.Errorf("failed to create interface %s: %w", row.Name, err)
		}

		iface = *created

		if row.OperStatus == models.InterfaceStatusDown {
			if err := p.raiseInterfaceDown(ctx, device, iface, now); err != nil {
				return err
			}
		}
	} else if iface.Status != row.OperStatus || (row.MACAddress != "" && iface.MACAddress != row.MACAddress) {
		if err := p.db.UpdateInterfaceState(ctx, iface.ID, row.OperStatus, row.MACAddress); err != nil {
			return fmt.Errorf("failed to update interface %d: %w", iface.ID, err)
		}

		if iface.Status != models.InterfaceStatusDown && row.OperStatus == models.InterfaceStatusDown {
			if err := p.raiseInterfaceDown(ctx, device, iface, now); err != nil {
				return err
			}
		}

		if iface.MACAddress != "" && row.MACAddress != "" && iface.MACAddress != row.MACAddress {
			if err := p.recordMacChange(ctx, device, iface, row.MACAddress, now); err != nil {
				return err
			}
		}
	}

	prev, ok := state.prev[row.Name]
	if !ok {
		prev = counterSample{in: row.InOctets, out: row.OutOctets}
	}

	state.prev[row.Name] = counterSample{in: row.InOctets, out: row.OutOctets}

	if _, err := p.db.InsertInterfaceStat(ctx, &models.InterfaceStat{
		InterfaceID: iface.ID,
		Timestamp:   now,
		InBps:       CalcBps(prev.in, row.InOctets, p.interval),
		OutBps:      CalcBps(prev.out, row.OutOctets, p.interval),
	}); err != nil {
		return fmt.Errorf("failed to insert stats for interface %d: %w", iface.ID, err)
	}

	return nil
}

func (p *Poller) raiseInterfaceDown(ctx context.Context, device models.Device, iface models.Interface, now time.Time) error {
	deviceID, ifaceID := device.ID, iface.ID

	alert, err := p.db.CreateAlert(ctx, &models.Alert{
		DeviceID:    &deviceID,
		InterfaceID: &ifaceID,
		AlertType:   models.AlertTypeInterfaceDown,
		Severity:    models.SeverityCritical,
		Message:     fmt.Sprintf("Interface %s on %s is down", iface.InterfaceName, device.DisplayName()),
		Timestamp:   now,
	})
	if err != nil {
		return fmt.Errorf("failed to create interface down alert: %w", err)
	}

	p.publish(ctx, models.MessageNewAlert, alert)

	return nil
}

func (p *Poller) recordMacChange(
	ctx context.Context, device models.Device, iface models.Interface, newMAC string, now time.Time) error {
	ifaceID := iface.ID

	change, err := p.db.CreateMacChange(ctx, &models.MacChangeLog{
		DeviceID:      device.ID,
		InterfaceID:   &ifaceID,
		InterfaceName: iface.InterfaceName,
		OldMAC:        iface.MACAddress,
		NewMAC:        newMAC,
		Timestamp:     now,
	})
	if err != nil {
		return fmt.Errorf("failed to record mac change: %w", err)
	}

	p.publish(ctx, models.MessageMacChange, change)

	deviceID := device.ID

	alert, err := p.db.CreateAlert(ctx, &models.Alert{
		DeviceID:    &deviceID,
		InterfaceID: &ifaceID,
		AlertType:   models.AlertTypeMacChange,
		Severity:    models.SeverityWarning,
		Message: fmt.Sprintf("MAC address of %s on %s changed from %s to %s",
			iface.InterfaceName, device.DisplayName(), iface.MACAddress, newMAC),
		Timestamp: now,
	})
	if err != nil {
		return fmt.Errorf("failed to create mac change alert: %w", err)
	}

	p.publish(ctx, models.MessageNewAlert, alert)

	return nil
}

// ensureLink creates a topology link the first time a neighbor is seen on a
// local port. Neighbors whose management address matches no device are ignored.
func (p *Poller) ensureLink(ctx context.Context, device models.Device, localPort string,
	n Neighbor, byIP map[string]models.Device, now time.Time) error {
	peer, ok := byIP[n.ManAddr]
	if !ok || peer.ID == device.ID {
		return nil
	}

	key := linkKey{src: device.ID, dst: peer.ID, srcPort: localPort, dstPort: n.PortDesc}

	p.mu.Lock()
	_, exists := p.links[key]
	p.mu.Unlock()

	if exists {
		return nil
	}

	if _, err := p.db.CreateTopologyLink(ctx, &models.TopologyLink{
		SrcDeviceID:  device.ID,
		SrcInterface: localPort,
		DstDeviceID:  peer.ID,
		DstInterface: n.PortDesc,
		LastSeen:     now,
	}); err != nil {
		return fmt.Errorf("failed to create topology link: %w", err)
	}

	p.mu.Lock()
	p.links[key] = struct{}{}
	p.mu.Unlock()

	p.logger.Info().
		Str("src", device.DisplayName()).
		Str("dst", peer.DisplayName()).
		Str("src_port", localPort).
		Msg("Discovered LLDP neighbor")

	return nil
}

// setDeviceStatus writes status on every poll so last_seen stays current and
// publishes a device_update only when the status changed.
func (p *Poller) setDeviceStatus(ctx context.Context, device models.Device, status models.DeviceStatus, seen time.Time) error {
	if err := p.db.UpdateDeviceStatus(ctx, device.ID, status, seen); err != nil {
		return fmt.Errorf("failed to update device %d status: %w", device.ID, err)
	}

	if device.Status != status {
		p.publish(ctx, models.MessageDeviceUpdate, models.DeviceStatusUpdate{ID: device.ID, Status: status})
	}

	return nil
}

func (p *Poller) publish(ctx context.Context, msgType models.MessageType, data interface{}) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.publisher.Publish(ctx, msgType, data); err != nil {
		p.logger.Warn().Err(err).Str("type", string(msgType)).Msg("Failed to publish event")
	}
}
