package handlers_test

import (
	"net/http"

	"garden-backend/internal/testutils"
)

func (suite *ProjectHandlerTestSuite) TestHealth() {
	w := suite.api.MakeRequest(http.MethodGet, "/api/health", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	suite.Equal(true, body["success"])
	suite.NotEmpty(body["timestamp"])
}

func (suite *ProjectHandlerTestSuite) TestGardenLayout() {
	suite.plantDefault()
	suite.plant(map[string]string{
		"projectName": "Customer Dashboard",
		"location":    "UX Studio",
		"projectAdjective": "Bold",
		"projectFeeling":   "Inspired",
	})

	w := suite.api.MakeRequest(http.MethodGet, "/api/garden/layout?width=1200&height=800", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	suite.Equal(true, body["success"])
	suite.Equal("none", body["grouping"])

	// 2 projects plus the 8 decorative stickers
	suite.EqualValues(10, body["count"])

	items := body["items"].([]interface{})
	projectCount := 0
	for _, raw := range items {
		item := raw.(map[string]interface{})
		y := item["y"].(float64)
		radius := item["radius"].(float64)
		suite.GreaterOrEqual(y, radius+60)
		suite.LessOrEqual(y, 800-radius-20)
		if item["project"].(bool) {
			projectCount++
			suite.NotZero(item["projectId"])
		}
	}
	suite.Equal(2, projectCount)
}

func (suite *ProjectHandlerTestSuite) TestGardenLayout_Grouped() {
	suite.plantDefault()

	w := suite.api.MakeRequest(http.MethodGet, "/api/garden/layout?grouping=adjective", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	suite.Equal("adjective", body["grouping"])
}

func (suite *ProjectHandlerTestSuite) TestGardenLayout_DefaultsViewport() {
	w := suite.api.MakeRequest(http.MethodGet, "/api/garden/layout", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	suite.EqualValues(1200, body["width"])
	suite.EqualValues(800, body["height"])
}
