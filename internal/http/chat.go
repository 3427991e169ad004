package http

import (
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/bonsa9/portfolio/internal/chatbot"
)

const maxChatMessage = 2000

type chatRequest struct {
	Message string `json:"message"`
	Topic   string `json:"topic"`
}

func (req chatRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Message, validation.By(func(value any) error {
			raw, _ := value.(string)
			return validation.Validate(strings.TrimSpace(raw), validation.Required)
		}), validation.RuneLength(1, maxChatMessage)),
		validation.Field(&req.Topic, validation.By(func(value any) error {
			raw, _ := value.(string)
			if _, ok := chatbot.ParseTopic(raw); !ok {
				return validation.NewError("portfolio.chat.topic_invalid", "unknown topic")
			}
			return nil
		})),
	)
}

func (api *API) registerChatRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "chat")
	mux.HandleFunc("POST "+root, api.handleChat)
	mux.HandleFunc("GET "+root+"/welcome", api.handleChatWelcome)
}

func (api *API) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid json body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation_failed", Message: err.Error()})
		return
	}

	prior, _ := chatbot.ParseTopic(req.Topic)
	reply := chatbot.Respond(req.Message, prior, api.persona)
	api.logger.Debug("http.chat.reply", "topic", string(reply.Topic))
	writeJSON(w, http.StatusOK, reply)
}

func (api *API) handleChatWelcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, chatbot.Welcome(api.persona))
}
