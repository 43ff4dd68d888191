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

package models

import "fmt"

type TopologyNode struct {
	ID        int64        `json:"id"`
	Label     string       `json:"label"`
	Type      string       `json:"type"`
	Status    DeviceStatus `json:"status"`
	IPAddress string       `json:"ipAddress"`
}

type TopologyEdge struct {
	ID              int64  `json:"id"`
	Source          int64  `json:"source"`
	Target          int64  `json:"target"`
	SourceInterface string `json:"sourceInterface"`
	TargetInterface string `json:"targetInterface"`
}

// TopologyView is the flat node/edge listing served at /api/topology.
type TopologyView struct {
	Nodes []TopologyNode `json:"nodes"`
	Edges []TopologyEdge `json:"edges"`
}

type GraphNodeData struct {
	Label     string       `json:"label"`
	Type      string       `json:"type"`
	Status    DeviceStatus `json:"status"`
	IPAddress string       `json:"ipAddress"`
	Vendor    string       `json:"vendor"`
	Model     string       `json:"model"`
}

type GraphPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type GraphNode struct {
	ID       string        `json:"id"`
	Data     GraphNodeData `json:"data"`
	Position GraphPosition `json:"position"`
}

type GraphEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// TopologyGraph uses string identifiers ("device-<id>", "link-<id>") for graph renderers.
type TopologyGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

func DeviceNodeID(id int64) string { return fmt.Sprintf("device-%d", id) }

func LinkEdgeID(id int64) string { return fmt.Sprintf("link-%d", id) }

// NewTopologyView builds the flat listing. Links referencing unknown devices are kept.
func NewTopologyView(devices []Device, links []TopologyLink) TopologyView {
	view := TopologyView{
		Nodes: make([]TopologyNode, 0, len(devices)),
		Edges: make([]TopologyEdge, 0, len(links)),
	}

	for i := range devices {
		d := &devices[i]
		view.Nodes = append(view.Nodes, TopologyNode{
			ID:        d.ID,
			Label:     d.DisplayName(),
			Type:      d.DeviceType,
			Status:    d.Status,
			IPAddress: d.IPAddress,
		})
	}

	for _, link := range links {
		view.Edges = append(view.Edges, TopologyEdge{
			ID:              link.ID,
			Source:          link.SrcDeviceID,
			Target:          link.DstDeviceID,
			SourceInterface: link.SrcInterface,
			TargetInterface: link.DstInterface,
		})
	}

	return view
}

// NewTopologyGraph builds the graph form. Node positions are left at the
// origin; layout is the renderer's job.
func NewTopologyGraph(devices []Device, links []TopologyLink) TopologyGraph {
	graph := TopologyGraph{
		Nodes: make([]GraphNode, 0, len(devices)),
		Edges: make([]GraphEdge, 0, len(links)),
	}

	for i := range devices {
		d := &devices[i]
		graph.Nodes = append(graph.Nodes, GraphNode{
			ID: DeviceNodeID(d.ID),
			Data: GraphNodeData{
				Label:     d.DisplayName(),
				Type:      d.DeviceType,
				Status:    d.Status,
				IPAddress: d.IPAddress,
				Vendor:    d.Vendor,
				Model:     d.Model,
			},
		})
	}

	for _, link := range links {
		graph.Edges = append(graph.Edges, GraphEdge{
			ID:     LinkEdgeID(link.ID),
			Source: DeviceNodeID(link.SrcDeviceID),
			Target: DeviceNodeID(link.DstDeviceID),
			Label:  link.SrcInterface + " - " + link.DstInterface,
		})
	}

	return graph
}
