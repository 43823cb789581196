//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"spigot-link/internal/handler/api"
	resdto "spigot-link/internal/handler/dto/response"
	"spigot-link/internal/infra"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/usecase/commands"
	"spigot-link/internal/usecase/queries"
	"spigot-link/tests/common/httptest"
	commandsmock "spigot-link/tests/mock/commands"
	queriesmock "spigot-link/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LinkHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockLinkQueries
	mockAdmin   *commandsmock.MockAdminCommands
	handler     *api.LinkHandler
}

func (s *LinkHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLinkQueries(s.mockCtrl)
	s.mockAdmin = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.handler = api.NewLinkHandler(s.mockQueries, s.mockAdmin)

	s.router.GET("/links", s.handler.List)
	s.router.GET("/links/:discord_id", s.handler.Get)
	s.router.DELETE("/links/:discord_id", s.handler.Unlink)
}

func (s *LinkHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLinkHandlerSuite(t *testing.T) {
	suite.Run(t, new(LinkHandlerTestSuite))
}

func sampleLink(discordID int64) queries.LinkView {
	return queries.LinkView{
		DiscordID: discordID,
		LinkedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Purchases: 2,
	}
}

func (s *LinkHandlerTestSuite) TestList() {
	s.Run("success: returns all links", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]queries.LinkView{sampleLink(1), sampleLink(2)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/links", nil, "")

		var resp struct {
			Links []queries.LinkView `json:"links"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Links, 2)
	})

	s.Run("error: 500 on a read failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errs.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/links", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *LinkHandlerTestSuite) TestGet() {
	s.Run("success: returns the link view", func() {
		view := sampleLink(111222333)
		s.mockQueries.EXPECT().ByUser(gomock.Any(), int64(111222333)).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/links/111222333", nil, "")

		var resp queries.LinkView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(111222333), resp.DiscordID)
	})

	s.Run("error: 404 for an unlinked user", func() {
		s.mockQueries.EXPECT().ByUser(gomock.Any(), int64(111222333)).
			Return(nil, infra.WrapRepoErr("link not found", nil, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/links/111222333", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Link not found")
	})

	s.Run("error: 400 for a malformed discord id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/links/garbage", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *LinkHandlerTestSuite) TestUnlink() {
	s.Run("success: returns the role outcome", func() {
		s.mockAdmin.EXPECT().Unlink(gomock.Any(), int64(111222333)).Return(true, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/links/111222333", nil, "")

		var resp resdto.UnlinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.RolesChanged)
	})

	s.Run("error: 404 for an unlinked user", func() {
		s.mockAdmin.EXPECT().Unlink(gomock.Any(), int64(111222333)).
			Return(false, commands.ErrLinkNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/links/111222333", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 500 on a write failure", func() {
		s.mockAdmin.EXPECT().Unlink(gomock.Any(), int64(111222333)).
			Return(false, errs.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/links/111222333", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
