package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/kitivo/apps/api/echo/helpers"
	"github.com/trezcool/kitivo/core/board"
	"github.com/trezcool/kitivo/core/notification"
	"github.com/trezcool/kitivo/core/user"
)

type boardApi struct {
	service    *board.Service
	userSvc    *user.Service
	dispatcher *notification.Dispatcher
}

func RegisterBoardAPI(g *echo.Group, auth, gate echo.MiddlewareFunc, svc *board.Service, userSvc *user.Service, dispatcher *notification.Dispatcher) {
	api := boardApi{service: svc, userSvc: userSvc, dispatcher: dispatcher}

	bg := g.Group("/board", auth, gate)

	bg.GET("/announcements", api.announcements)
	bg.POST("/announcements", api.createAnnouncement, helpers.AdminOrPresidentMiddleware())
	bg.DELETE("/announcements/:id", api.deleteAnnouncement, helpers.AdminOrPresidentMiddleware())

	bg.GET("/events", api.events)
	bg.POST("/events", api.createEvent, helpers.AdminOrPresidentMiddleware())
	bg.DELETE("/events/:id", api.deleteEvent, helpers.AdminOrPresidentMiddleware())

	bg.GET("/jobs", api.jobs)
	bg.POST("/jobs", api.createJob)
	bg.DELETE("/jobs/:id", api.deleteJob, helpers.AdminOrPresidentMiddleware())

	bg.GET("/lostfound", api.lostFoundItems)
	bg.POST("/lostfound", api.createLostFoundItem)
	bg.DELETE("/lostfound/:id", api.deleteLostFoundItem, helpers.AdminOrPresidentMiddleware())

	bg.GET("/notes", api.notes)
	bg.POST("/notes", api.createNote)
	bg.DELETE("/notes/:id", api.deleteNote, helpers.AdminOrPresidentMiddleware())

	bg.GET("/tutors", api.tutorProfiles)
	bg.PUT("/tutors/me", api.upsertTutorProfile)

	bg.GET("/faculty", api.facultyDirectory)
	bg.POST("/faculty", api.addFaculty, helpers.AdminMiddleware())
	bg.PUT("/faculty/:id", api.updateFaculty, helpers.AdminMiddleware())
	bg.DELETE("/faculty/:id", api.deleteFaculty, helpers.AdminMiddleware())

	// member directory; used to pick tutors and message partners
	bg.GET("/members", api.members)
}

func (api *boardApi) announcements(ctx echo.Context) error {
	anns, err := api.service.Announcements()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, anns)
}

func (api *boardApi) createAnnouncement(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(board.NewAnnouncement)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	ann, intents, err := api.service.CreateAnnouncement(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ann)
}

func (api *boardApi) deleteAnnouncement(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteAnnouncement(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *boardApi) events(ctx echo.Context) error {
	events, err := api.service.Events()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *boardApi) createEvent(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(board.NewCalendarEvent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	event, intents, err := api.service.CreateEvent(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, event)
}

func (api *boardApi) deleteEvent(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteEvent(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *boardApi) jobs(ctx echo.Context) error {
	jobs, err := api.service.Jobs()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, jobs)
}

func (api *boardApi) createJob(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(board.NewJob)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	job, intents, err := api.service.CreateJob(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, job)
}

func (api *boardApi) deleteJob(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteJob(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *boardApi) lostFoundItems(ctx echo.Context) error {
	items, err := api.service.LostFoundItems()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *boardApi) createLostFoundItem(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(board.NewLostFoundItem)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	item, intents, err := api.service.CreateLostFoundItem(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (api *boardApi) deleteLostFoundItem(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteLostFoundItem(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *boardApi) notes(ctx echo.Context) error {
	notes, err := api.service.Notes()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, notes)
}

func (api *boardApi) createNote(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(board.NewPublicNote)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	note, intents, err := api.service.CreateNote(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, note)
}

func (api *boardApi) deleteNote(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteNote(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *boardApi) tutorProfiles(ctx echo.Context) error {
	profiles, err := api.service.TutorProfiles()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profiles)
}

func (api *boardApi) upsertTutorProfile(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(board.TutorProfileForm)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	profile, err := api.service.UpsertTutorProfile(claims.UserID(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profile)
}

func (api *boardApi) facultyDirectory(ctx echo.Context) error {
	faculty, err := api.service.FacultyDirectory()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, faculty)
}

func (api *boardApi) addFaculty(ctx echo.Context) error {
	data := new(board.FacultyForm)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	fac, err := api.service.AddFaculty(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, fac)
}

func (api *boardApi) updateFaculty(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	data := new(board.FacultyForm)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	fac, err := api.service.UpdateFaculty(id, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fac)
}

func (api *boardApi) deleteFaculty(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteFaculty(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *boardApi) members(ctx echo.Context) error {
	users, err := api.userSvc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}
