package handlers_test

import (
	"fmt"
	"net/http"
)

func (suite *ProjectHandlerTestSuite) TestProjectSticker() {
	created := suite.plantDefault()
	id := projectField(created, "id").(float64)

	w := suite.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/projects/%v/sticker", id), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "image/svg+xml")
	suite.Contains(w.Body.String(), "<svg")
	suite.NotContains(w.Body.String(), "animateTransform")
}

func (suite *ProjectHandlerTestSuite) TestProjectSticker_Animated() {
	created := suite.plantDefault()
	id := projectField(created, "id").(float64)

	w := suite.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/projects/%v/sticker?animated=true", id), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "animateTransform")
}

func (suite *ProjectHandlerTestSuite) TestProjectSticker_NotFound() {
	w := suite.api.MakeRequest(http.MethodGet, "/api/projects/9999/sticker", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestPreviewSticker() {
	w := suite.api.MakeRequest(http.MethodGet, "/api/stickers/preview?adjective=Fresh&feeling=Excited", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "image/svg+xml")
	suite.Contains(w.Body.String(), "<svg")
}

func (suite *ProjectHandlerTestSuite) TestPreviewSticker_UnknownWordsStillRender() {
	w := suite.api.MakeRequest(http.MethodGet, "/api/stickers/preview?adjective=Sparkly&feeling=Confused", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "<svg")
}
