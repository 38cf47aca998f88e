//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/handler/api"
	reqdto "rental-pricing/internal/handler/dto/request"
	resdto "rental-pricing/internal/handler/dto/response"
	"rental-pricing/internal/pkg/config"
	"rental-pricing/internal/pkg/errs"
	"rental-pricing/internal/pkg/formtime"
	"rental-pricing/internal/usecase/queries"
	"rental-pricing/tests/common/builder"
	"rental-pricing/tests/common/httptest"
	"rental-pricing/tests/common/testutil"
	queriesmock "rental-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	cfg.Pricing.FormTimeZone = "UTC"
	s.handler = api.NewQuoteHandler(s.mockQueries, cfg)

	s.router.POST("/quotes", s.handler.Create)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

type testCaseQuote struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCreate() {
	url := "/quotes"
	cameraID := uuid.New()
	reqBody := builder.NewQuoteRequestBuilder().WithEquipment(cameraID).Build()

	s.Run("success: split form fields are combined in the form timezone", func() {
		wantStart := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)

		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p queries.QuoteParams) (*queries.QuoteView, error) {
				s.Require().NotNil(p.Start)
				s.Require().NotNil(p.End)
				s.True(wantStart.Equal(*p.Start))
				s.True(wantEnd.Equal(*p.End))
				s.Equal([]uuid.UUID{cameraID}, p.Selections[pricing.GroupEquipment])
				return builder.QuoteViewFixture(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(1, body.Days)
		s.Equal(1500.0, body.Total)
		s.Equal("฿1,500.00", body.TotalDisplay)
		s.Require().Len(body.Subtotals, 1)
		s.Equal("equipment", body.Subtotals[0].Group)
		s.Require().Len(body.Selected, 1)
		s.Require().Len(body.Selected[0].Items, 1)
		s.NotNil(body.Selected[0].Items[0].ID)
	})

	s.Run("success: RFC3339 instants take precedence", func() {
		start := time.Date(2024, 2, 1, 9, 0, 0, 0, time.FixedZone("ICT", 7*3600))
		end := start.Add(30 * time.Hour)
		req := builder.NewQuoteRequestBuilder().Between(start, end).Build()
		req.StartDate = "05/05/2030"

		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p queries.QuoteParams) (*queries.QuoteView, error) {
				s.True(start.Equal(*p.Start))
				s.True(end.Equal(*p.End))
				return builder.QuoteViewFixture(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, req, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: end before start still answers 200", func() {
		msg := pricing.ErrEndNotAfterStart.Error()
		view := &queries.QuoteView{Subtotals: []queries.SubtotalView{}, IntervalError: &msg, TotalDisplay: "฿0.00"}
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		req := builder.NewQuoteRequestBuilder().Build()
		req.EndClock = "08"
		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, req, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Zero(body.Days)
		s.Require().NotNil(body.IntervalError)
		s.Equal(msg, *body.IntervalError)
		s.NotNil(body.Subtotals)
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, "POST", url, `{"start_date": `, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 names the malformed boundary in detail", func() {
		req := builder.NewQuoteRequestBuilder().Build()
		req.StartDate = "31/02/2024"

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, req, "")
		res := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking time")
		s.Equal("start: "+formtime.ErrInvalidDate.Error(), res.Detail)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseQuote{
			{name: "malformed start clock", mutate: testutil.Field("start_clock", "25"), expectCode: http.StatusBadRequest},
			{name: "malformed end date", mutate: testutil.Field("end_date", "31/02/2024"), expectCode: http.StatusBadRequest},
			{name: "non-uuid selection", mutate: testutil.Field("equipment", []string{"camera"}), expectCode: http.StatusBadRequest},
			{name: "unknown item group", mutate: testutil.Field("items", []map[string]any{{"group": "props", "name": "fog"}}), expectCode: http.StatusBadRequest},
			{name: "negative item rate", mutate: testutil.Field("items", []map[string]any{{"group": "equipment", "name": "x", "rate": -1}}), expectCode: http.StatusBadRequest},
			{name: "missing end bound is not an error", mutate: testutil.Without("end_date", "end_clock"), expectCode: http.StatusOK},
			{name: "zero quantity means one", mutate: testutil.Field("items", []map[string]any{{"group": "equipment", "name": "x", "quantity": 0}}), expectCode: http.StatusOK},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusOK {
					s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(builder.QuoteViewFixture(), nil).Times(1)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, requestMap, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 422 on unknown catalog item", func() {
		err := errs.Mark(errs.New("equipment item missing"), queries.ErrCatalogItemNotFound)
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Unknown catalog item")
	})

	s.Run("error: 500 on store failure", func() {
		err := errs.Mark(errs.New("connection reset"), queries.ErrCatalogQueryFailed)
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to compute quote")
	})
}

func (s *QuoteHandlerTestSuite) TestCreate_ItemsArePassedThrough() {
	rate := 250.0
	label := "Reflector (฿100/วัน)"
	req := builder.NewQuoteRequestBuilder().
		WithItem(reqdto.QuoteItemRequest{Group: "equipment", Name: "Stand", Rate: &rate, Quantity: 3}).
		WithItem(reqdto.QuoteItemRequest{Group: "equipment", Label: &label}).
		Build()

	s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p queries.QuoteParams) (*queries.QuoteView, error) {
			s.Require().Len(p.AdHoc, 2)
			s.Equal(queries.AdHocItem{Group: "equipment", Name: "Stand", Rate: &rate, Quantity: 3}, p.AdHoc[0])
			s.Equal(&label, p.AdHoc[1].Label)
			s.Empty(p.Selections)
			return builder.QuoteViewFixture(), nil
		})

	rec := httptest.PerformRequest(s.T(), s.router, "POST", "/quotes", req, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}
