package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnqbao/gau-watchlist-service/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bindBody(t *testing.T, body string, req Validatable) ValidationErrors {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, req)
}

func TestBindWatchList_Valid(t *testing.T) {
	var req WatchListRequestDTO
	errs := bindBody(t, `{"name":"Inception","description":"A heist movie","active":false,"platform":2}`, &req)

	require.Empty(t, errs)
	movie := req.ToEntity()
	assert.Equal(t, "Inception", movie.Name)
	assert.Equal(t, "A heist movie", movie.Description)
	assert.False(t, movie.Active)
	require.NotNil(t, movie.PlatformID)
	assert.Equal(t, uint(2), *movie.PlatformID)
}

func TestBindWatchList_ActiveDefaultsToTrue(t *testing.T) {
	var req WatchListRequestDTO
	require.Empty(t, bindBody(t, `{"name":"Inception","description":"A heist movie"}`, &req))

	movie := req.ToEntity()
	assert.True(t, movie.Active)
	assert.Nil(t, movie.PlatformID)
}

func TestBindWatchList_IgnoresClientID(t *testing.T) {
	var req WatchListRequestDTO
	require.Empty(t, bindBody(t, `{"id":77,"len_name":1,"name":"Inception","description":"A heist movie"}`, &req))
	assert.Zero(t, req.ToEntity().ID)
}

func TestBindWatchList_ShortName(t *testing.T) {
	for _, name := range []string{"a", "Up", "Ray", "Édé"} {
		var req WatchListRequestDTO
		errs := bindBody(t, `{"name":"`+name+`","description":"Some description"}`, &req)
		assert.Equal(t, ValidationErrors{"name": {"Name is too short!"}}, errs, "name %q", name)
	}
}

func TestBindWatchList_NameEqualsDescription(t *testing.T) {
	var req WatchListRequestDTO
	errs := bindBody(t, `{"name":"Dune","description":"Dune","active":true}`, &req)
	assert.Equal(t, ValidationErrors{"name": {"The name and description should not be the same."}}, errs)
}

func TestBindWatchList_ObjectRuleSkippedWhenFieldsFail(t *testing.T) {
	var req WatchListRequestDTO
	errs := bindBody(t, `{"name":"Up","description":"Up"}`, &req)
	assert.Equal(t, ValidationErrors{"name": {"Name is too short!"}}, errs)
}

func TestBindWatchList_RequiredAndMaxLength(t *testing.T) {
	var req WatchListRequestDTO
	errs := bindBody(t, `{"name":"`+strings.Repeat("x", 51)+`"}`, &req)

	assert.Equal(t, []string{"Ensure this field has no more than 50 characters."}, errs["name"])
	assert.Equal(t, []string{"This field is required."}, errs["description"])
}

func TestBindWatchList_FieldRuleMergedWithBindingErrors(t *testing.T) {
	var req WatchListRequestDTO
	errs := bindBody(t, `{"name":"Up"}`, &req)

	assert.Equal(t, []string{"Name is too short!"}, errs["name"])
	assert.Equal(t, []string{"This field is required."}, errs["description"])
}

func TestBind_MalformedJSON(t *testing.T) {
	var req WatchListRequestDTO
	errs := bindBody(t, `{"name":`, &req)
	assert.Equal(t, ValidationErrors{NonFieldErrorsKey: {"Invalid JSON payload."}}, errs)

	errs = bindBody(t, ``, &req)
	assert.Contains(t, errs, NonFieldErrorsKey)
}

func TestBind_IncorrectType(t *testing.T) {
	var req WatchListRequestDTO
	errs := bindBody(t, `{"name":"Inception","description":"A heist movie","platform":"netflix"}`, &req)
	require.Contains(t, errs, "platform")
	assert.True(t, strings.HasPrefix(errs["platform"][0], "Incorrect type."))
}

func TestBindStreamPlatform(t *testing.T) {
	var req StreamPlatformRequestDTO
	require.Empty(t, bindBody(t, `{"name":"Netflix","description":"Streaming service"}`, &req))
	assert.Equal(t, "Netflix", req.ToEntity().Name)

	req = StreamPlatformRequestDTO{}
	errs := bindBody(t, `{"name":"`+strings.Repeat("n", 31)+`","description":""}`, &req)
	assert.Equal(t, []string{"Ensure this field has no more than 30 characters."}, errs["name"])
	assert.Equal(t, []string{"This field is required."}, errs["description"])
}

func TestBindReview(t *testing.T) {
	author := uuid.New()

	var req ReviewRequestDTO
	require.Empty(t, bindBody(t, `{"rating":4,"description":"Great","watchlist":3,"author":"`+author.String()+`"}`, &req))

	review := req.ToEntity()
	assert.Equal(t, 4, review.Rating)
	assert.True(t, review.Active)
	assert.Equal(t, uint(3), review.WatchListID)
	assert.Equal(t, author, review.AuthorID)
}

func TestBindReview_Errors(t *testing.T) {
	var req ReviewRequestDTO
	errs := bindBody(t, `{"rating":9,"author":"not-a-uuid"}`, &req)

	assert.Equal(t, []string{"Ensure this value is less than or equal to 5."}, errs["rating"])
	assert.Equal(t, []string{"This field is required."}, errs["watchlist"])
	assert.Equal(t, []string{"Must be a valid UUID."}, errs["author"])

	req = ReviewRequestDTO{}
	errs = bindBody(t, `{"rating":0,"watchlist":1,"author":"`+uuid.NewString()+`"}`, &req)
	assert.Equal(t, ValidationErrors{"rating": {"Ensure this value is greater than or equal to 1."}}, errs)
}

func TestNewWatchListResponse(t *testing.T) {
	platformID := uint(9)
	movie := &entity.WatchList{
		ID:          4,
		Name:        "Arrival",
		Description: "First contact",
		Active:      true,
		PlatformID:  &platformID,
		Reviews: []entity.Review{
			{ID: 1, Rating: 5, Active: true, WatchListID: 4, AuthorID: uuid.New()},
		},
	}

	resp := NewWatchListResponse(movie)
	assert.Equal(t, 7, resp.LenName)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, uint(4), resp.Reviews[0].WatchList)

	empty := NewWatchListResponse(&entity.WatchList{ID: 5, Name: "Heat"})
	assert.NotNil(t, empty.Reviews)
	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"reviews":[]`)
	assert.Contains(t, string(raw), `"platform":null`)
}

func TestNewStreamPlatformResponse_Modes(t *testing.T) {
	platform := &entity.StreamPlatform{
		ID:          1,
		Name:        "Netflix",
		Description: "Streaming service",
		WatchList: []entity.WatchList{
			{ID: 3, Name: "Roma", Description: "Drama", Active: true},
			{ID: 8, Name: "Okja", Description: "Adventure", Active: true},
		},
	}
	link := func(id uint) string { return fmt.Sprintf("http://example.com/watch/%d/", id) }

	nested := NewStreamPlatformResponse(platform, RelationNested, link)
	entries, ok := nested.WatchList.([]WatchListResponseDTO)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "Okja", entries[1].Name)

	linked := NewStreamPlatformResponse(platform, RelationHyperlink, link)
	assert.Equal(t, []string{"http://example.com/watch/3/", "http://example.com/watch/8/"}, linked.WatchList)

	fallback := NewStreamPlatformResponse(platform, RelationHyperlink, nil)
	_, ok = fallback.WatchList.([]WatchListResponseDTO)
	assert.True(t, ok)
}

func TestParseRelationMode(t *testing.T) {
	assert.Equal(t, RelationHyperlink, ParseRelationMode("hyperlink"))
	assert.Equal(t, RelationNested, ParseRelationMode("nested"))
	assert.Equal(t, RelationNested, ParseRelationMode(""))
}

func TestWatchListRoundTrip(t *testing.T) {
	platformID := uint(2)
	cases := []*entity.WatchList{
		{ID: 1, Name: "Inception", Description: "A heist movie", Active: true},
		{ID: 2, Name: "Solaris", Description: "Ocean planet", Active: false, PlatformID: &platformID},
	}

	for _, stored := range cases {
		raw, err := json.Marshal(NewWatchListResponse(stored))
		require.NoError(t, err)

		var req WatchListRequestDTO
		require.NoError(t, json.Unmarshal(raw, &req))
		decoded := req.ToEntity()

		assert.Equal(t, stored.Name, decoded.Name)
		assert.Equal(t, stored.Description, decoded.Description)
		assert.Equal(t, stored.Active, decoded.Active)
		assert.Equal(t, stored.PlatformID, decoded.PlatformID)
	}
}

func TestReviewRoundTrip(t *testing.T) {
	stored := &entity.Review{ID: 3, Rating: 2, Description: "Meh", Active: false, WatchListID: 6, AuthorID: uuid.New()}

	raw, err := json.Marshal(NewReviewResponse(stored))
	require.NoError(t, err)

	var req ReviewRequestDTO
	require.NoError(t, json.Unmarshal(raw, &req))
	decoded := req.ToEntity()
	decoded.ID = stored.ID

	assert.Equal(t, stored, decoded)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{}
	errs.Add("name", "Name is too short!")
	errs.Add("description", "This field is required.")
	assert.Equal(t, "description: This field is required.; name: Name is too short!", errs.Error())

	assert.Equal(t, ValidationErrors{"platform": {`Invalid pk "12" - object does not exist.`}}, InvalidPKError("platform", 12))
}
