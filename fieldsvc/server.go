package fieldsvc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sgostarter/i/l"
)

// Handler returns the websocket endpoint. Each text message is decoded as a
// Request and answered with exactly one Response on the same connection, in
// arrival order. With WithTokenKey the handshake is refused with 401 unless
// it carries a valid token.
func (s *Service) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.log.WithFields(l.StringField("remote", r.RemoteAddr))
		if s.cfg.tokenKey != nil {
			sub, err := s.authorize(r)
			if err != nil {
				logger.WithFields(l.ErrorField(err)).Error("handshake refused")
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			logger = logger.WithFields(l.StringField("subject", sub))
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: s.cfg.origins,
		})
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("accept")
			return
		}
		defer c.CloseNow()
		c.SetReadLimit(s.cfg.readLimit)

		if err := s.serve(r, c, logger); err != nil {
			logger.WithFields(l.ErrorField(err)).Error("connection closed")
		}
	})
}

func (s *Service) serve(r *http.Request, c *websocket.Conn, logger l.Wrapper) error {
	ctx := r.Context()
	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			return err
		}

		var resp Response
		if req, err := decode(typ, data); err != nil {
			resp = Response{ID: req.ID, Kind: req.Kind, Error: err.Error()}
		} else {
			resp = s.Handle(ctx, req)
			logger.WithFields(
				l.StringField("kind", string(req.Kind)),
				l.StringField("id", resp.ID),
				l.StringField("cached", strconv.FormatBool(resp.Cached)),
				l.StringField("error", resp.Error),
			).Debug("request")
		}
		if err := wsjson.Write(ctx, c, resp); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
}

// decode parses one inbound frame. Only text frames carry requests.
func decode(typ websocket.MessageType, data []byte) (Request, error) {
	var req Request
	if typ != websocket.MessageText {
		return req, fmt.Errorf("binary message: %w", ErrBadRequest)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return Request{}, fmt.Errorf("offset %d: %v: %w", syn.Offset, err, ErrBadRequest)
		}
		return req, fmt.Errorf("%v: %w", err, ErrBadRequest)
	}

	return req, nil
}
