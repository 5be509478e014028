package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/accounts-api/internal/api/metrics"
	"github.com/moviehub/accounts-api/internal/core/ports"
)

// ListHandler serves the favorites and watch-list routes. All routes sit
// behind the Protect guard; the current account comes from the request
// context.
type ListHandler struct {
	lists ports.ListService
}

func NewListHandler(lists ports.ListService) *ListHandler {
	return &ListHandler{lists: lists}
}

// GetFavorites resolves the account's favorite ids into movie data.
//
// @Summary      List favorite movies
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  moviesResponse
// @Failure      404  {object}  statusResponse
// @Router       /favorites [get]
func (h *ListHandler) GetFavorites(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	data, err := h.lists.Favorites(c.Request().Context(), user)
	if err != nil {
		return c.JSON(http.StatusNotFound, statusResponse{Status: "failed"})
	}
	return c.JSON(http.StatusOK, moviesResponse{Status: "success", Data: data})
}

// AddFavorite appends the path id to the favorites list. Adding an id that
// is already present reports failure and leaves the list unchanged.
//
// @Summary      Add a movie to favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Movie id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /favorites/add/{id} [get]
func (h *ListHandler) AddFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "failed"})
	}

	if err := h.lists.AddFavorite(c.Request().Context(), user, movieID); err != nil {
		metrics.ListOpsTotal.WithLabelValues("favorites", "add", "failed").Inc()
		return c.JSON(http.StatusNotFound, statusResponse{
			Status: "failed, movie already added as favorite",
		})
	}

	metrics.ListOpsTotal.WithLabelValues("favorites", "add", "success").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}

// RemoveFavorite removes the path id from the favorites list. Removing an
// absent id reports failure and leaves the list unchanged.
//
// @Summary      Remove a movie from favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Movie id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /favorites/remove/{id} [get]
func (h *ListHandler) RemoveFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "failed"})
	}

	if err := h.lists.RemoveFavorite(c.Request().Context(), user, movieID); err != nil {
		metrics.ListOpsTotal.WithLabelValues("favorites", "remove", "failed").Inc()
		return c.JSON(http.StatusNotFound, statusResponse{
			Status: "failed, movie is not added as favorite",
		})
	}

	metrics.ListOpsTotal.WithLabelValues("favorites", "remove", "success").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}

// GetWatchList resolves the account's watch-list ids into movie data.
//
// @Summary      List watch-list movies
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  moviesResponse
// @Failure      404  {object}  statusResponse
// @Router       /watch-list [get]
func (h *ListHandler) GetWatchList(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	data, err := h.lists.WatchList(c.Request().Context(), user)
	if err != nil {
		return c.JSON(http.StatusNotFound, statusResponse{Status: "failed"})
	}
	return c.JSON(http.StatusOK, moviesResponse{Status: "success", Data: data})
}

// AddToWatchList mirrors AddFavorite over the watch list.
//
// @Summary      Add a movie to the watch list
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Movie id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /watch-list/add/{id} [get]
func (h *ListHandler) AddToWatchList(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "failed"})
	}

	if err := h.lists.AddToWatchList(c.Request().Context(), user, movieID); err != nil {
		metrics.ListOpsTotal.WithLabelValues("watchlist", "add", "failed").Inc()
		return c.JSON(http.StatusNotFound, statusResponse{
			Status: "failed, movie already added to watch list",
		})
	}

	metrics.ListOpsTotal.WithLabelValues("watchlist", "add", "success").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}

// RemoveFromWatchList mirrors RemoveFavorite over the watch list.
//
// @Summary      Remove a movie from the watch list
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Movie id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /watch-list/remove/{id} [get]
func (h *ListHandler) RemoveFromWatchList(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "failed"})
	}

	if err := h.lists.RemoveFromWatchList(c.Request().Context(), user, movieID); err != nil {
		metrics.ListOpsTotal.WithLabelValues("watchlist", "remove", "failed").Inc()
		return c.JSON(http.StatusNotFound, statusResponse{
			Status: "failed, movie is not added to watch list",
		})
	}

	metrics.ListOpsTotal.WithLabelValues("watchlist", "remove", "success").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
