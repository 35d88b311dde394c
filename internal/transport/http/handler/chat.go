package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"solutiontech-chat/internal/app"
	"solutiontech-chat/internal/transport/http/response"
	"solutiontech-chat/internal/upload"
)

type ChatHandler struct {
	chatService *app.ChatService
}

type CreateSessionRequest struct {
	Title string `json:"title" binding:"max=128"`
}

func NewChatHandler(chatService *app.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	response.OK(c, h.chatService.ListSessions())
}

func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
			return
		}
	}

	response.OK(c, h.chatService.CreateSession(req.Title))
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages(c.Param("id"))
	if err != nil {
		if errors.Is(err, app.ErrSessionNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeSessionNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list messages failed")
		return
	}

	response.OK(c, messages)
}

// SubmitMessage accepts a multipart form with a "text" field and zero or more
// "files" parts. Files outside the allow-list are rejected here, before
// anything reaches the attachment processor.
func (h *ChatHandler) SubmitMessage(c *gin.Context) {
	text := c.PostForm("text")

	var uploads []upload.Upload
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, fh := range form.File["files"] {
			contentType := fh.Header.Get("Content-Type")
			if !upload.AllowedType(contentType) {
				response.Error(c, http.StatusBadRequest, response.CodeUnsupportedFileType,
					fmt.Sprintf("file type %q is not allowed", contentType))
				return
			}

			f, openErr := fh.Open()
			if openErr != nil {
				response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "read uploaded file failed")
				return
			}
			defer f.Close()

			uploads = append(uploads, upload.Upload{
				Name:        fh.Filename,
				ContentType: contentType,
				Size:        fh.Size,
				Reader:      f,
			})
		}
	}

	result, err := h.chatService.SubmitMessage(app.SubmitMessageInput{
		SessionID: c.Param("id"),
		Text:      text,
		Uploads:   uploads,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmptyContent):
			response.Error(c, http.StatusBadRequest, response.CodeEmptyContent, err.Error())
		case errors.Is(err, app.ErrSessionNotFound):
			response.Error(c, http.StatusNotFound, response.CodeSessionNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "submit message failed")
		}
		return
	}

	response.OK(c, result)
}

func (h *ChatHandler) SearchMessages(c *gin.Context) {
	response.OK(c, h.chatService.SearchMessages(c.Query("q")))
}
