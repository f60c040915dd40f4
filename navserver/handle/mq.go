package handle

import (
	"time"

	"navzone/navserver/api"

	"github.com/flswld/halo/logger"
	"github.com/nats-io/nats.go"
	"github.com/vmihailenco/msgpack/v5"
)

// 同一前缀下的多个实例组成一个队列组 请求只会被其中一个实例处理
const natsQueueGroup = "navzone"

// StartMq 连接nats并订阅查询请求 请求和响应都是msgpack编码
func (h *Handle) StartMq(natsUrl string, subjectPrefix string) error {
	conn, err := nats.Connect(natsUrl,
		nats.Name("navzone"),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		logger.Error("connect nats error: %v", err)
		return err
	}
	h.natsConn = conn
	err = subscribe(h, subjectPrefix+"."+api.SubjectQueryPath, h.QueryPath)
	if err != nil {
		return err
	}
	err = subscribe(h, subjectPrefix+"."+api.SubjectGetGroup, h.GetGroup)
	if err != nil {
		return err
	}
	err = subscribe(h, subjectPrefix+"."+api.SubjectRandomPoint, h.RandomPoint)
	if err != nil {
		return err
	}
	logger.Info("nats subscribe ok, prefix: %v", subjectPrefix)
	return nil
}

func subscribe[REQ any, RSP any](h *Handle, subject string, handler func(*REQ) *RSP) error {
	sub, err := h.natsConn.QueueSubscribe(subject, natsQueueGroup, func(msg *nats.Msg) {
		req := new(REQ)
		err := msgpack.Unmarshal(msg.Data, req)
		if err != nil {
			logger.Error("unmarshal mq req error: %v, subject: %v", err, msg.Subject)
			return
		}
		rsp := handler(req)
		data, err := msgpack.Marshal(rsp)
		if err != nil {
			logger.Error("marshal mq rsp error: %v, subject: %v", err, msg.Subject)
			return
		}
		err = msg.Respond(data)
		if err != nil {
			logger.Error("respond mq msg error: %v, subject: %v", err, msg.Subject)
		}
	})
	if err != nil {
		logger.Error("nats subscribe error: %v, subject: %v", err, subject)
		return err
	}
	h.subList = append(h.subList, sub)
	return nil
}

func (h *Handle) CloseMq() {
	for _, sub := range h.subList {
		_ = sub.Unsubscribe()
	}
	h.subList = h.subList[:0]
	if h.natsConn != nil {
		h.natsConn.Close()
		h.natsConn = nil
	}
}
