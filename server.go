// Package openidparams serves OpenID endpoints which exchange params.List messages over fasthttp.
package openidparams

import (
	"context"
	"io"
	"os"

	"github.com/valyala/fasthttp"

	"github.com/iostrovok/openidparams/logger/config"
	"github.com/iostrovok/openidparams/logger/level"
	"github.com/iostrovok/openidparams/params"
)

// Handler gets the decoded request message and returns the direct response message.
// A nil list is an empty response.
type Handler func(ctx context.Context, in *params.List) (*params.List, error)

type Server struct {
	srv     *fasthttp.Server
	handler Handler

	logConfig *config.Config

	// shutdownTimeOut is max time for shutdown server in millisecond, 0 means no limit
	shutdownTimeOut int
	maxBodySize     int

	serverName string
}

func New(handler Handler) *Server {
	return &Server{
		handler:   handler,
		logConfig: config.NewConfig(),
	}
}

func (server *Server) Server() *fasthttp.Server {
	return server.srv
}

func (server *Server) SetServer(srv *fasthttp.Server) *Server {
	server.srv = srv
	return server
}

func (server *Server) ServerName() string {
	return server.serverName
}

func (server *Server) SetServerName(name string) *Server {
	server.serverName = name
	return server
}

func (server *Server) ShutdownTimeOut() int {
	return server.shutdownTimeOut
}

func (server *Server) SetShutdownTimeOut(shutdownTimeOut int) *Server {
	server.shutdownTimeOut = shutdownTimeOut
	return server
}

func (server *Server) MaxBodySize() int {
	return server.maxBodySize
}

// SetMaxBodySize limits POST bodies, 0 keeps the fasthttp default.
func (server *Server) SetMaxBodySize(size int) *Server {
	server.maxBodySize = size
	return server
}

func (server *Server) LoggerWriter() io.Writer {
	return server.logConfig.Writer()
}

func (server *Server) SetLoggerWriter(loggerWriter io.Writer) *Server {
	server.logConfig.SetWriter(loggerWriter)
	return server
}

func (server *Server) SetLogLevel(mode level.Level) *Server {
	server.logConfig.SetLevel(mode)
	return server
}

func (server *Server) LogLevel() level.Level {
	return server.logConfig.Level()
}

func resolveAddress(addr []string) string {
	switch len(addr) {
	case 0:
		if port := os.Getenv("PORT"); port != "" {
			return ":" + port
		}
		return ":8080"
	case 1:
		return addr[0]
	default:
		panic("too many parameters")
	}
}
