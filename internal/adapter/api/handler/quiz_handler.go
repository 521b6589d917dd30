package handler

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/response"
)

type QuizHandler struct {
	quizUseCase *usecase.QuizUseCase
}

func NewQuizHandler(quizUseCase *usecase.QuizUseCase) *QuizHandler {
	return &QuizHandler{
		quizUseCase: quizUseCase,
	}
}

func (h *QuizHandler) List(c echo.Context) error {
	quizzes, err := h.quizUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, quizzes)
}

func (h *QuizHandler) Questions(c echo.Context) error {
	questions, err := h.quizUseCase.Questions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, questions)
}

func (h *QuizHandler) Start(c echo.Context) error {
	uid := c.Get("uid").(string)

	question, err := h.quizUseCase.Start(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, question)
}

func (h *QuizHandler) Answer(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Option *int `json:"option" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.quizUseCase.Answer(c.Request().Context(), uid, c.Param("id"), *req.Option)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *QuizHandler) Restart(c echo.Context) error {
	uid := c.Get("uid").(string)

	question, err := h.quizUseCase.Restart(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, question)
}

func (h *QuizHandler) Exit(c echo.Context) error {
	uid := c.Get("uid").(string)

	h.quizUseCase.Exit(c.Request().Context(), uid, c.Param("id"))

	return response.Success(c, map[string]string{
		"message": "Quiz session closed",
	})
}
