// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package server exposes the well performance curves over a websocket
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/bRunquist/utpgetools-package/inp"
)

// Server upgrades HTTP requests and hands each peer its own hub
type Server struct {
	cfg      Config
	well     *inp.WellData
	upgrader websocket.Upgrader
}

// NewServer reads the configured well and returns a server
func NewServer(cfg Config) (*Server, error) {
	well, err := inp.ReadWell(cfg.WellDir, cfg.WellFile)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:  cfg,
		well: well,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// serveWs handles websocket requests from the peer
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("cannot upgrade connection: %v", err)
		return
	}
	defer conn.Close()
	hub := NewHub(s.well, s.cfg.Npts)
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		var msg Msg
		err = conn.ReadJSON(&msg)
		if err != nil {
			log.Infof("peer gone: %v", err)
			close(hub.msg)
			return
		}
		hub.msg <- msg
	}
}

// Serve blocks listening on the configured address
func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.Infof("serving well %q on %s", s.well.Name, s.cfg.Addr)
	err := http.ListenAndServe(s.cfg.Addr, nil)
	if err != nil {
		log.Fatalf("ListenAndServe: %v", err)
	}
}
