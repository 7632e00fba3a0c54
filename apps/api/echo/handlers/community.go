package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/kitivo/apps/api/echo/helpers"
	"github.com/trezcool/kitivo/core/forum"
	"github.com/trezcool/kitivo/core/messaging"
	"github.com/trezcool/kitivo/core/notification"
	"github.com/trezcool/kitivo/core/poll"
	"github.com/trezcool/kitivo/core/quiz"
)

type communityApi struct {
	quizSvc      *quiz.Service
	pollSvc      *poll.Service
	forumSvc     *forum.Service
	messagingSvc *messaging.Service
	dispatcher   *notification.Dispatcher
}

func RegisterCommunityAPI(
	g *echo.Group, auth, gate echo.MiddlewareFunc,
	quizSvc *quiz.Service, pollSvc *poll.Service, forumSvc *forum.Service,
	messagingSvc *messaging.Service, dispatcher *notification.Dispatcher,
) {
	api := communityApi{
		quizSvc:      quizSvc,
		pollSvc:      pollSvc,
		forumSvc:     forumSvc,
		messagingSvc: messagingSvc,
		dispatcher:   dispatcher,
	}

	qg := g.Group("/quizzes", auth, gate)
	qg.GET("", api.quizzes)
	qg.POST("", api.createQuiz, helpers.AdminOrPresidentMiddleware())
	qg.GET("/:id", api.getQuiz)
	qg.POST("/:id/submit", api.submitQuiz)
	qg.GET("/:id/results", api.quizResults, helpers.AdminOrPresidentMiddleware())
	qg.DELETE("/:id", api.deleteQuiz, helpers.AdminOrPresidentMiddleware())
	qg.GET("/submissions", api.userSubmissions)

	pg := g.Group("/polls", auth, gate)
	pg.GET("", api.polls)
	pg.POST("", api.createPoll, helpers.AdminOrPresidentMiddleware())
	pg.GET("/:id", api.getPoll)
	pg.POST("/:id/vote", api.votePoll)
	pg.DELETE("/:id", api.deletePoll, helpers.AdminOrPresidentMiddleware())

	fg := g.Group("/forums", auth, gate)
	fg.GET("", api.threads)
	fg.POST("", api.createThread)
	fg.GET("/:id", api.getThread)
	fg.POST("/:id/reply", api.replyThread)
	fg.DELETE("/:id", api.deleteThread, helpers.AdminOrPresidentMiddleware())

	mg := g.Group("/messages", auth, gate)
	mg.GET("/partners", api.partners)
	mg.GET("/with/:id", api.conversation)
	mg.POST("", api.sendMessage)
	mg.POST("/:id/read", api.readMessage)
}

type (
	SubmitQuizRequest struct {
		Answers []*int `json:"answers"`
	}
	VoteRequest struct {
		Option int `json:"option"`
	}
	ReplyRequest struct {
		Body string `json:"body"`
	}
	SendMessageRequest struct {
		To   int    `json:"to"`
		Body string `json:"body"`
	}
)

// quizzes

func (api *communityApi) quizzes(ctx echo.Context) error {
	quizzes, err := api.quizSvc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, quizzes)
}

func (api *communityApi) createQuiz(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(quiz.NewQuiz)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	qz, intents, err := api.quizSvc.Create(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, qz)
}

func (api *communityApi) getQuiz(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	qz, err := api.quizSvc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, qz)
}

func (api *communityApi) submitQuiz(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	claims := helpers.GetContextClaims(ctx)
	data := new(SubmitQuizRequest)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	sub, err := api.quizSvc.Submit(id, claims.UserID(), data.Answers)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sub)
}

func (api *communityApi) quizResults(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	results, err := api.quizSvc.Results(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, results)
}

func (api *communityApi) userSubmissions(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	subs, err := api.quizSvc.UserSubmissions(claims.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *communityApi) deleteQuiz(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.quizSvc.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// polls

func (api *communityApi) polls(ctx echo.Context) error {
	polls, err := api.pollSvc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, polls)
}

func (api *communityApi) createPoll(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(poll.NewPoll)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	pl, intents, err := api.pollSvc.Create(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, pl)
}

func (api *communityApi) getPoll(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	pl, err := api.pollSvc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pl)
}

func (api *communityApi) votePoll(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	claims := helpers.GetContextClaims(ctx)
	data := new(VoteRequest)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	pl, err := api.pollSvc.CastVote(id, claims.UserID(), data.Option)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pl)
}

func (api *communityApi) deletePoll(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.pollSvc.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// forums

func (api *communityApi) threads(ctx echo.Context) error {
	threads, err := api.forumSvc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, threads)
}

func (api *communityApi) createThread(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(forum.NewThread)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	thread, intents, err := api.forumSvc.Create(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, thread)
}

func (api *communityApi) getThread(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	thread, err := api.forumSvc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, thread)
}

func (api *communityApi) replyThread(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	claims := helpers.GetContextClaims(ctx)
	data := new(ReplyRequest)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	thread, intents, err := api.forumSvc.Reply(id, claims.UserID(), data.Body)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, thread)
}

func (api *communityApi) deleteThread(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.forumSvc.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// messaging

func (api *communityApi) partners(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	partners, err := api.messagingSvc.Partners(claims.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, partners)
}

func (api *communityApi) conversation(ctx echo.Context) error {
	otherID, err := pathID(ctx)
	if err != nil {
		return err
	}
	claims := helpers.GetContextClaims(ctx)
	msgs, err := api.messagingSvc.Conversation(claims.UserID(), otherID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *communityApi) sendMessage(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(SendMessageRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	msg, intents, err := api.messagingSvc.Send(claims.UserID(), data.To, data.Body)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, msg)
}

func (api *communityApi) readMessage(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	claims := helpers.GetContextClaims(ctx)
	msg, err := api.messagingSvc.MarkRead(id, claims.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, msg)
}
