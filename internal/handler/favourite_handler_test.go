package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavourite(t *testing.T) {
	e, _, favourites := newServer()

	rec := doJSON(e, http.MethodPost, "/add-favourite", `{"email":"marvin@gmail.com","carpark_no":"ABC"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Carpark added to favourites!", body["message"])

	favs, err := favourites.List("marvin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC"}, favs)
}

func TestAddFavourite_StoreFault(t *testing.T) {
	e, _, favourites := newServer()
	favourites.err = errors.New("disk on fire")

	rec := doJSON(e, http.MethodPost, "/add-favourite", `{"email":"marvin@gmail.com","carpark_no":"ABC"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to add to favourites!", body["message"])
}

func TestRemoveFavourite(t *testing.T) {
	e, _, favourites := newServer()
	require.NoError(t, favourites.Add("marvin@gmail.com", "ABC"))
	require.NoError(t, favourites.Add("marvin@gmail.com", "123"))

	rec := doJSON(e, http.MethodPost, "/remove-favourite", `{"email":"marvin@gmail.com","carpark_no":"ABC"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Carpark removed from favourites!", body["message"])

	favs, err := favourites.List("marvin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, favs)
}

func TestRemoveFavourite_NeverAdded(t *testing.T) {
	e, _, favourites := newServer()
	require.NoError(t, favourites.Add("marvin@gmail.com", "ABC"))

	// Removing a pair that was never added still reports success
	rec := doJSON(e, http.MethodPost, "/remove-favourite", `{"email":"marvin@gmail.com","carpark_no":"NOPE"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	favs, err := favourites.List("marvin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC"}, favs)
}

func TestGetFavourites(t *testing.T) {
	e, _, favourites := newServer()
	require.NoError(t, favourites.Add("marvin@gmail.com", "ABC"))
	require.NoError(t, favourites.Add("marvin@gmail.com", "123"))
	require.NoError(t, favourites.Add("other@gmail.com", "XYZ"))

	rec := doJSON(e, http.MethodGet, "/favourites/marvin@gmail.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{"ABC", "123"}, body["favourites"])
}

func TestGetFavourites_NoneFound(t *testing.T) {
	e, _, _ := newServer()

	rec := doJSON(e, http.MethodGet, "/favourites/nobody@gmail.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No favourites found!", body["message"])
}
