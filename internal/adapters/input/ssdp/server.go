// Package ssdp answers UPnP discovery searches so clients find the bridge.
package ssdp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"emulated-hue/internal/domain/response"
)

const (
	multicastAddr = "239.255.255.250:1900"

	targetBasic      = "urn:schemas-upnp-org:device:basic:1"
	targetRootDevice = "upnp:rootdevice"
	targetAll        = "ssdp:all"
)

type Server struct {
	ip            string
	port          int
	bindMulticast bool
}

// NewServer answers with the description URL at ip:port. When bindMulticast
// is false the listener binds to all interfaces instead of the group address.
func NewServer(ip string, port int, bindMulticast bool) *Server {
	return &Server{ip: ip, port: port, bindMulticast: bindMulticast}
}

// Start listens until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	conn, err := s.listen()
	if err != nil {
		return fmt.Errorf("ssdp listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	log.Info().Str("ip", s.ip).Int("port", s.port).Bool("multicast", s.bindMulticast).Msg("SSDP responder started")

	buf := make([]byte, 2048)
	for {
		n, src, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Warn().Err(err).Msg("SSDP read failed")
			continue
		}

		st, ok := searchTarget(string(buf[:n]))
		if !ok {
			continue
		}
		log.Debug().Str("from", src.String()).Str("st", st).Msg("Answering M-SEARCH")
		if err := s.respond(src, st); err != nil {
			log.Warn().Err(err).Str("to", src.String()).Msg("SSDP response failed")
		}
	}
}

func (s *Server) listen() (*net.UDPConn, error) {
	group, err := net.ResolveUDPAddr("udp4", multicastAddr)
	if err != nil {
		return nil, err
	}
	if s.bindMulticast {
		return net.ListenMulticastUDP("udp4", nil, group)
	}
	return net.ListenUDP("udp4", &net.UDPAddr{Port: group.Port})
}

func (s *Server) respond(dest *net.UDPAddr, st string) error {
	conn, err := net.DialUDP("udp4", nil, dest)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(time.Second)); err != nil {
		return err
	}
	_, err = conn.Write([]byte(buildResponse(s.ip, s.port, st)))
	return err
}

// searchTarget reports whether msg is an M-SEARCH the bridge answers and
// which search target to echo back.
func searchTarget(msg string) (string, bool) {
	if !strings.HasPrefix(msg, "M-SEARCH") {
		return "", false
	}
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, targetBasic):
		return targetBasic, true
	case strings.Contains(lower, targetRootDevice):
		return targetRootDevice, true
	case strings.Contains(lower, targetAll):
		return targetBasic, true
	}
	return "", false
}

func buildResponse(ip string, port int, st string) string {
	return fmt.Sprintf("HTTP/1.1 200 OK\r\n"+
		"CACHE-CONTROL: max-age=60\r\n"+
		"EXT:\r\n"+
		"LOCATION: http://%s:%d/description.xml\r\n"+
		"SERVER: FreeRTOS/6.0.5, UPnP/1.0, IpBridge/1.16.0\r\n"+
		"hue-bridgeid: %s\r\n"+
		"ST: %s\r\n"+
		"USN: uuid:%s::%s\r\n\r\n",
		ip, port, response.BridgeID, st, response.BridgeUDN, st)
}
