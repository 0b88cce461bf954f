//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"agent-portal/internal/domain/cart"
	"agent-portal/internal/handler/api"
	reqdto "agent-portal/internal/handler/dto/request"
	resdto "agent-portal/internal/handler/dto/response"
	"agent-portal/internal/pkg/errs"
	"agent-portal/tests/common/httptest"
	commandsmock "agent-portal/tests/mock/commands"
	queriesmock "agent-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testAccessToken = "test-access-token"

// withAccessToken mimics the auth middleware for handler tests.
func withAccessToken(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("access_token", testAccessToken)
		c.Set("agent_key", "agent-1")
		handler(c)
	}
}

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockCartQueries
	mockCommands *commandsmock.MockCartCommands
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/cart", withAccessToken(s.handler.GetCart))
	s.router.DELETE("/cart/lines/:id", withAccessToken(s.handler.RemoveLine))
	s.router.PUT("/cart/lines/:id/notes", withAccessToken(s.handler.UpdateNotes))
	s.router.PUT("/cart/lines/:id/guest", withAccessToken(s.handler.SelectGuest))
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGetCart() {
	s.Run("success: returns the cart view", func() {
		view := &cart.View{
			CartID:     "cart-1",
			Currency:   "IDR",
			GrandTotal: 1500000,
			Lines: []cart.LineView{
				{No: 1, LineID: "line-1", Label: "Hotel X - Deluxe Room", HotelName: "Hotel X", RoomTypeName: "Deluxe Room", Nights: 2, Total: 1500000, Guest: "Mr John Doe"},
			},
		}
		s.mockQueries.EXPECT().View(gomock.Any(), testAccessToken, "").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cart-1", response.CartID)
		s.Require().Len(response.Lines, 1)
		s.Equal("Hotel X - Deluxe Room", response.Lines[0].Label)
		s.Equal(2, response.Lines[0].Nights)
	})

	s.Run("success: forwards the display currency", func() {
		s.mockQueries.EXPECT().View(gomock.Any(), testAccessToken, "USD").
			Return(&cart.View{CartID: "cart-1", Currency: "USD"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart?currency=USD", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: upstream failures map to gateway statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "timeout", err: errs.ErrUpstreamTimeout, expectCode: http.StatusGatewayTimeout},
			{name: "unreachable", err: errs.ErrUpstreamUnreachable, expectCode: http.StatusServiceUnavailable},
			{name: "bad response", err: errs.ErrUpstreamBadResponse, expectCode: http.StatusBadGateway},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().View(gomock.Any(), testAccessToken, "").
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestRemoveLine() {
	s.Run("success: removes the line", func() {
		s.mockCommands.EXPECT().RemoveLine(gomock.Any(), testAccessToken, "line-1").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/lines/line-1", nil, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("Room removed from cart", response.Message)
	})

	s.Run("error: unknown line returns 404", func() {
		s.mockCommands.EXPECT().RemoveLine(gomock.Any(), testAccessToken, "missing").
			Return(errs.ErrCartLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/lines/missing", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: upstream rejection surfaces its message in the envelope", func() {
		s.mockCommands.EXPECT().RemoveLine(gomock.Any(), testAccessToken, "line-1").
			Return(errs.Mark(errs.New("Room no longer available"), errs.ErrUpstreamRejected)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/lines/line-1", nil, "")
		s.Equal(http.StatusBadGateway, rec.Code)

		var response resdto.Envelope
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.False(response.Success)
		s.Contains(response.Message, "Room no longer available")
	})
}

func (s *CartHandlerTestSuite) TestUpdateNotes() {
	s.Run("success: updates the notes", func() {
		s.mockCommands.EXPECT().UpdateNotes(gomock.Any(), testAccessToken, "line-1", "late arrival").
			Return(nil).Times(1)

		body := reqdto.UpdateNotesRequest{Notes: "late arrival"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/lines/line-1/notes", body, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
	})
}

func (s *CartHandlerTestSuite) TestSelectGuest() {
	url := "/cart/lines/line-1/guest"

	s.Run("success: assigns the guest", func() {
		s.mockCommands.EXPECT().SelectGuest(gomock.Any(), testAccessToken, "line-1", "Mr John Doe").
			Return(nil).Times(1)

		body := reqdto.SelectGuestRequest{Guest: "Mr John Doe"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Guest assigned", response.Message)
	})

	s.Run("error: placeholder selection returns 400", func() {
		s.mockCommands.EXPECT().SelectGuest(gomock.Any(), testAccessToken, "line-1", "Select Guest").
			Return(errs.ErrInvalidGuest).Times(1)

		body := reqdto.SelectGuestRequest{Guest: "Select Guest"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: missing guest field fails binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
