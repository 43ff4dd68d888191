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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var _ Service = (*MockService)(nil)

func TestMockServiceUpdateInterfaceState(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := NewMockService(ctrl)

	mockDB.EXPECT().UpdateInterfaceState(gomock.Any(), int64(7), "down", "02:00:00:00:00:01").Return(nil)

	assert.NoError(t, mockDB.UpdateInterfaceState(context.Background(), 7, "down", "02:00:00:00:00:01"))
}
