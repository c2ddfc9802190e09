// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/bRunquist/utpgetools-package/alift"
	"github.com/bRunquist/utpgetools-package/inp"
)

// Msg is the request/response envelope exchanged over the socket
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// CurveData pairs rates with flowing pressures for one computed curve
type CurveData struct {
	Q   []float64 `json:"q"`   // rates [STB/d]
	Pwf []float64 `json:"pwf"` // flowing pressures [psia]
}

// NodalData holds the operating point of the well
type NodalData struct {
	Qop float64 `json:"qop"` // operating rate [STB/d]
	Pop float64 `json:"pop"` // operating pressure [psia]
}

// Hub serves the curves of one well over a single websocket connection
type Hub struct {
	well *inp.WellData
	npts int
	conn *websocket.Conn

	// request
	msg chan Msg
	// response
	reply chan Msg
}

// NewHub returns a hub for the given well
func NewHub(well *inp.WellData, npts int) *Hub {
	return &Hub{
		well:  well,
		npts:  npts,
		msg:   make(chan Msg, 10),
		reply: make(chan Msg, 10),
	}
}

// handleRequest computes replies for incoming messages
func (h *Hub) handleRequest() {
	for msg := range h.msg {
		var data interface{}
		var err error
		switch msg.Type {
		case "ipr":
			data, err = h.iprData()
		case "vlp":
			data, err = h.vlpData()
		case "nodal":
			data, err = h.nodalData()
		default:
			log.Warnf("no such request type: %q", msg.Type)
			h.reply <- Msg{Type: "error", Content: "no such request type: " + msg.Type}
			continue
		}
		if err != nil {
			log.Errorf("%s request failed: %v", msg.Type, err)
			h.reply <- Msg{Type: "error", Content: err.Error()}
			continue
		}
		b, err := json.Marshal(data)
		if err != nil {
			log.Errorf("cannot marshal %s reply: %v", msg.Type, err)
			continue
		}
		h.reply <- Msg{Type: msg.Type, Content: string(b)}
	}
}

// handleResponse writes replies back to the peer
func (h *Hub) handleResponse() {
	for reply := range h.reply {
		err := h.conn.WriteJSON(&reply)
		if err != nil {
			log.Errorf("cannot write reply: %v", err)
			return
		}
	}
}

// iprData computes the inflow curve of the well
func (h *Hub) iprData() (*CurveData, error) {
	ipr, err := h.well.IPR()
	if err != nil {
		return nil, err
	}
	pwfs := utl.LinSpace(h.well.Pres, 0, h.npts)
	q, err := ipr.Curve(0, pwfs)
	if err != nil {
		return nil, err
	}
	return &CurveData{Q: q, Pwf: pwfs}, nil
}

// vlpData computes the outflow curve of the well over rates up to the
// absolute open flow
func (h *Hub) vlpData() (*CurveData, error) {
	ipr, err := h.well.IPR()
	if err != nil {
		return nil, err
	}
	trv, err := h.well.Traverse()
	if err != nil {
		return nil, err
	}
	qmax := ipr.Qmax(0)
	rates := utl.LinSpace(qmax/float64(h.npts), qmax, h.npts)
	bhps, err := trv.Curve(rates)
	if err != nil {
		return nil, err
	}
	return &CurveData{Q: rates, Pwf: bhps}, nil
}

// nodalData intersects inflow and outflow to find the operating point
func (h *Hub) nodalData() (*NodalData, error) {
	ipr, err := h.well.IPR()
	if err != nil {
		return nil, err
	}
	trv, err := h.well.Traverse()
	if err != nil {
		return nil, err
	}
	if h.npts < 2 {
		return nil, chk.Err("nodal needs at least two scan points. npts=%d is invalid", h.npts)
	}
	pwfs := utl.LinSpace(h.well.Pres, h.well.Pres*0.1, h.npts)
	qop, pop, err := alift.OperatingPoint(ipr, 0, trv, pwfs)
	if err != nil {
		return nil, err
	}
	return &NodalData{Qop: qop, Pop: pop}, nil
}
