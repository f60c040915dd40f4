package nats

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	cfg "navzone/common/config"

	"github.com/flswld/halo/logger"
	"github.com/nats-io/nats-server/v2/server"
)

// ParseNatsAddr 解析单节点nats地址 nats://host:port
func ParseNatsAddr(natsUrl string) (string, int, error) {
	natsAddr := strings.ReplaceAll(natsUrl, "nats://", "")
	if strings.Contains(natsAddr, ",") {
		return "", 0, errors.New("not support nats cluster")
	}
	split := strings.Split(natsAddr, ":")
	if len(split) != 2 {
		return "", 0, errors.New("nats addr format error")
	}
	port, err := strconv.Atoi(split[1])
	if err != nil {
		return "", 0, err
	}
	return split[0], port, nil
}

// RunNatsServer 运行内嵌的nats服务 单机部署时不需要额外的消息队列
func RunNatsServer(ctx context.Context) error {
	host, port, err := ParseNatsAddr(cfg.GetConfig().MQ.NatsUrl)
	if err != nil {
		return err
	}

	opts := &server.Options{
		Host:                  host,
		Port:                  port,
		NoLog:                 false,
		NoSigs:                true,
		MaxControlLine:        4096,
		DisableShortFirstPing: true,
		Trace:                 false,
		Debug:                 false,
	}
	natsServer, err := server.NewServer(opts)
	if err != nil {
		return err
	}
	natsServer.ConfigureLogger()
	go natsServer.Start()
	defer natsServer.Shutdown()
	ok := natsServer.ReadyForConnections(time.Second * 5)
	if !ok {
		return errors.New("nats server start error")
	}
	logger.Warn("nats server start, addr: %v", natsServer.Addr())

	c := make(chan os.Signal, 1)
	if !cfg.GetConfig().Navzone.StandaloneModeEnable {
		signal.Notify(c, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(c)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-c:
			switch s {
			case syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT:
				return nil
			case syscall.SIGHUP:
			default:
				return nil
			}
		}
	}
}
