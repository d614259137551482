package service

import (
	"context"
	"strings"
	"testing"

	"garden-backend/internal/cache"
	apperrors "garden-backend/internal/errors"
	"garden-backend/internal/repository"
	"garden-backend/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// ProjectServiceTestSuite tests the ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *ProjectService
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	repo := repository.NewProjectRepository(suite.baseTestSuite.DB)
	suite.service = NewProjectService(repo, validator.New(), nil)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectServiceTestSuite) plant(name, location, adjective, feeling string) *ProjectResponse {
	resp, err := suite.service.Create(&CreateProjectRequest{
		ProjectName: name,
		Location:    location,
		Adjective:   adjective,
		Feeling:     feeling,
	})
	suite.Require().NoError(err)
	return resp
}

// TestCreate tests planting a project with derived sticker data
func (suite *ProjectServiceTestSuite) TestCreate() {
	resp := suite.plant("Tomato Tracker", "Greenhouse", "Fresh", "Excited")

	suite.NotZero(resp.ID)
	suite.Equal("Tomato Tracker", resp.ProjectName)
	suite.Equal("Anonymous Gardener", resp.Creator)
	suite.Equal("shape4", resp.StickerData.FruitType)
	suite.Equal("I grow Tomato Tracker in Greenhouse", resp.StickerData.Text)

	// Seed position lands in the designated bands.
	suite.GreaterOrEqual(resp.PositionX, 10.0)
	suite.LessOrEqual(resp.PositionX, 90.0)
	suite.GreaterOrEqual(resp.PositionY, 20.0)
	suite.LessOrEqual(resp.PositionY, 80.0)
	suite.GreaterOrEqual(resp.GardenRow, 0)
	suite.LessOrEqual(resp.GardenRow, 4)
}

// TestCreate_JitteredColorStaysNearBase tests the sticker color derivation
func (suite *ProjectServiceTestSuite) TestCreate_JitteredColorStaysNearBase() {
	resp := suite.plant("Color Check", "Lab", "Fresh", "Excited")
	// Jitter keeps the hex format; the exact value may vary around the base.
	suite.Regexp(`^#[0-9A-F]{6}$`, resp.StickerData.Color)
}

// TestCreate_MissingRequiredFields tests validation
func (suite *ProjectServiceTestSuite) TestCreate_MissingRequiredFields() {
	_, err := suite.service.Create(&CreateProjectRequest{Location: "Greenhouse"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.Create(&CreateProjectRequest{ProjectName: "No Location"})
	suite.True(apperrors.IsValidation(err))
}

// TestCreate_UnknownWordPairFallsBack tests descriptor defaults
func (suite *ProjectServiceTestSuite) TestCreate_UnknownWordPairFallsBack() {
	resp := suite.plant("Mystery", "Nowhere", "Sparkly", "Confused")
	suite.Equal("shape1", resp.StickerData.FruitType)
}

// TestList tests listing with sorts and filters
func (suite *ProjectServiceTestSuite) TestList() {
	suite.plant("Alpha", "North", "Fresh", "Excited")
	beta := suite.plant("Beta", "South", "Bold", "Inspired")
	suite.plant("Gamma", "East", "Fresh", "Excited")

	_, err := suite.service.Like(beta.ID)
	suite.Require().NoError(err)

	all, err := suite.service.List(ListOptions{})
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal("Gamma", all[0].ProjectName, "default order is newest first")

	byName, err := suite.service.List(ListOptions{Sort: "name"})
	suite.NoError(err)
	suite.Equal("Alpha", byName[0].ProjectName)

	popular, err := suite.service.List(ListOptions{Sort: "popular"})
	suite.NoError(err)
	suite.Equal("Beta", popular[0].ProjectName)

	oldest, err := suite.service.List(ListOptions{Sort: "oldest"})
	suite.NoError(err)
	suite.Equal("Alpha", oldest[0].ProjectName)

	freshOnly, err := suite.service.List(ListOptions{Shape: "shape4"})
	suite.NoError(err)
	suite.Len(freshOnly, 2)
	for _, p := range freshOnly {
		suite.Equal("shape4", p.StickerData.FruitType)
	}
}

// TestSearch tests query matching and the empty query guard
func (suite *ProjectServiceTestSuite) TestSearch() {
	suite.plant("Tomato Tracker", "Greenhouse", "Fresh", "Excited")
	suite.plant("Herb Wall", "Kitchen", "Bold", "Inspired")

	found, err := suite.service.Search("tomato")
	suite.NoError(err)
	suite.Len(found, 1)
	suite.Equal("Tomato Tracker", found[0].ProjectName)

	_, err = suite.service.Search("   ")
	suite.ErrorIs(err, apperrors.ErrEmptySearchQuery)
}

// TestLike tests the like flow
func (suite *ProjectServiceTestSuite) TestLike() {
	resp := suite.plant("Likeable", "Here", "Fresh", "Excited")

	liked, err := suite.service.Like(resp.ID)
	suite.NoError(err)
	suite.Equal(1, liked.Likes)

	_, err = suite.service.Like(99999)
	suite.True(apperrors.IsNotFound(err))
}

// TestUpdateLink tests link replacement
func (suite *ProjectServiceTestSuite) TestUpdateLink() {
	resp := suite.plant("Linked", "Here", "Fresh", "Excited")

	updated, err := suite.service.UpdateLink(resp.ID, "https://example.com/x")
	suite.NoError(err)
	suite.Equal("https://example.com/x", updated.ProjectLink)

	_, err = suite.service.UpdateLink(resp.ID, "")
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.UpdateLink(99999, "https://example.com/x")
	suite.True(apperrors.IsNotFound(err))
}

// TestDelete tests project removal
func (suite *ProjectServiceTestSuite) TestDelete() {
	resp := suite.plant("Doomed", "Here", "Fresh", "Excited")

	suite.NoError(suite.service.Delete(resp.ID))

	_, err := suite.service.GetByID(resp.ID)
	suite.True(apperrors.IsNotFound(err))

	suite.True(apperrors.IsNotFound(suite.service.Delete(resp.ID)))
}

// TestCacheInvalidationOnWrite tests that list reads prime the cache and every
// write drops it, so subsequent reads never serve stale lists
func (suite *ProjectServiceTestSuite) TestCacheInvalidationOnWrite() {
	mr := miniredis.RunT(suite.T())
	projectCache := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer projectCache.Close()

	repo := repository.NewProjectRepository(suite.baseTestSuite.DB)
	cached := NewProjectService(repo, validator.New(), projectCache)

	resp, err := cached.Create(&CreateProjectRequest{
		ProjectName: "Cached", Location: "Here", Adjective: "Fresh", Feeling: "Excited",
	})
	suite.Require().NoError(err)

	ctx := context.Background()

	_, err = cached.List(ListOptions{})
	suite.Require().NoError(err)
	var primed []ProjectResponse
	suite.True(projectCache.Get(ctx, "all", &primed), "list read should prime the cache")
	suite.Len(primed, 1)

	_, err = cached.Like(resp.ID)
	suite.Require().NoError(err)
	var stale []ProjectResponse
	suite.False(projectCache.Get(ctx, "all", &stale), "like should drop cached lists")

	_, err = cached.List(ListOptions{})
	suite.Require().NoError(err)
	suite.True(projectCache.Get(ctx, "all", &primed))

	suite.Require().NoError(cached.Delete(resp.ID))
	suite.False(projectCache.Get(ctx, "all", &stale), "delete should drop cached lists")
}

// TestStickerTextFollowsRename tests derive-on-read behavior
func (suite *ProjectServiceTestSuite) TestStickerTextFollowsRename() {
	resp := suite.plant("Old Name", "Plot 7", "Fresh", "Excited")

	// Rename directly in storage; the sticker text must follow on read.
	suite.baseTestSuite.DB.Exec(`UPDATE projects SET "projectName" = ? WHERE id = ?`, "New Name", resp.ID)

	fetched, err := suite.service.GetByID(resp.ID)
	suite.NoError(err)
	suite.True(strings.HasPrefix(fetched.StickerData.Text, "I grow New Name"))
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
