package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/vcdice-69/Parked-Up/pkg/logger"
	"github.com/vcdice-69/Parked-Up/prometheus"
)

// FavouriteRequest defines the structure for add/remove favourite requests
type FavouriteRequest struct {
	Email     string `json:"email"`
	CarparkNo string `json:"carpark_no"`
}

// AddFavourite adds a carpark to the user's favourites list
func (h *Handler) AddFavourite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordFavouriteOperation("add")

	var req FavouriteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse add favourite request", zap.Error(err))
		prometheus.RecordAccountError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.favourites.Add(req.Email, req.CarparkNo); err != nil {
		log.Error("Failed to add favourite",
			zap.String("email", req.Email),
			zap.String("carpark_no", req.CarparkNo),
			zap.Error(err))
		prometheus.RecordAccountError("favourite_add_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to add to favourites!"})
	}

	log.Info("Favourite added",
		zap.String("email", req.Email),
		zap.String("carpark_no", req.CarparkNo))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Carpark added to favourites!"})
}

// RemoveFavourite removes a carpark from the user's favourites list. Removing
// a carpark that was never favourited still succeeds.
func (h *Handler) RemoveFavourite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordFavouriteOperation("remove")

	var req FavouriteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse remove favourite request", zap.Error(err))
		prometheus.RecordAccountError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.favourites.Remove(req.Email, req.CarparkNo); err != nil {
		log.Error("Failed to remove favourite",
			zap.String("email", req.Email),
			zap.String("carpark_no", req.CarparkNo),
			zap.Error(err))
		prometheus.RecordAccountError("favourite_remove_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to remove from favourites!"})
	}

	log.Info("Favourite removed",
		zap.String("email", req.Email),
		zap.String("carpark_no", req.CarparkNo))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Carpark removed from favourites!"})
}

// GetFavourites returns the carparks favourited by the email path parameter
func (h *Handler) GetFavourites(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordFavouriteOperation("list")

	email := c.Param("email")

	defer prometheus.TrackDBOperation("query")(time.Now())
	favs, err := h.favourites.List(email)
	if err != nil {
		log.Error("Failed to list favourites", zap.String("email", email), zap.Error(err))
		prometheus.RecordAccountError("favourite_list_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to fetch favourites"})
	}

	// The legacy API reports an empty favourites list as not found.
	if len(favs) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "No favourites found!"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "favourites": favs})
}
