package openidparams

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/errgroup"

	"github.com/iostrovok/openidparams/httpmsg"
	"github.com/iostrovok/openidparams/logger"
	"github.com/iostrovok/openidparams/params"
)

// Run listens on addr (or ":$PORT", or ":8080") and serves until ctx is done or a stop signal comes.
func (server *Server) Run(ctx context.Context, addr ...string) error {
	ln, err := net.Listen("tcp", resolveAddress(addr))
	if err != nil {
		return errors.WithStack(err)
	}

	return server.Serve(ctx, ln)
}

func (server *Server) Serve(ctx context.Context, ln net.Listener) error {
	errGroup, errCtx := errgroup.WithContext(ctx)

	if server.srv == nil {
		server.srv = &fasthttp.Server{}
	}

	server.srv.Handler = server.ServeHTTP

	if server.serverName != "" {
		server.srv.Name = server.serverName
	}

	if server.maxBodySize > 0 {
		server.srv.MaxRequestBodySize = server.maxBodySize
	}

	errGroup.Go(func() error {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
		defer signal.Stop(ch)

		select {
		case <-errCtx.Done():
			return errors.Wrap(server.shutdown(), context.Canceled.Error())
		case sig := <-ch:
			return errors.Wrap(server.shutdown(), "server shutdown: "+sig.String())
		}
	})

	errGroup.Go(func() error {
		return server.srv.Serve(ln)
	})

	return errGroup.Wait()
}

func (server *Server) shutdown() error {
	if server.shutdownTimeOut <= 0 {
		return server.srv.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(server.shutdownTimeOut)*time.Millisecond)
	defer cancel()

	return server.srv.ShutdownWithContext(ctx)
}

// ServeHTTP decodes the request message, calls the handler and writes its answer in key-value form.
func (server *Server) ServeHTTP(fastCtx *fasthttp.RequestCtx) {
	lg := logger.New().SetConfig(server.logConfig).
		Add("method", string(fastCtx.Method())).
		Add("path", string(fastCtx.Path()))

	in, err := httpmsg.FromRequest(fastCtx)
	if err != nil {
		lg.Error(err).Warnf("can't decode message")
		writeError(fastCtx, fasthttp.StatusBadRequest, err)
		return
	}

	if lg.IsDebug() {
		lg.Clone().Params(in).Debugf("message decoded")
	}

	out, err := server.handler(fastCtx, in)
	if err != nil {
		lg.Error(err).Errorf("handler failed")
		writeError(fastCtx, fasthttp.StatusInternalServerError, err)
		return
	}

	httpmsg.WriteKeyValueForm(fastCtx, out, fasthttp.StatusOK)
}

func writeError(fastCtx *fasthttp.RequestCtx, status int, err error) {
	httpmsg.WriteKeyValueForm(fastCtx, params.New().Set(params.NewParam("error", err.Error())), status)
}
