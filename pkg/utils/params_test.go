package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParseIDParam(t *testing.T) {
	c := testContext("/")
	c.Params = gin.Params{{Key: "id", Value: "12"}, {Key: "bad", Value: "x"}, {Key: "zero", Value: "0"}}

	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	_, err = ParseIDParam(c, "bad")
	assert.EqualError(t, err, "invalid bad")
	_, err = ParseIDParam(c, "zero")
	assert.Error(t, err)
}

func TestParseQueryHelpers(t *testing.T) {
	c := testContext("/?department_id=4&days=7&from=2024-03-01&to=2024-03-05T10:00:00Z&unread_only=true&bad=-1")

	dept, err := ParseOptionalUint(c, "department_id")
	require.NoError(t, err)
	assert.Equal(t, uint(4), *dept)

	none, err := ParseOptionalUint(c, "product_id")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = ParseOptionalUint(c, "bad")
	assert.Error(t, err)

	days, err := ParseIntDefault(c, "days", 30)
	require.NoError(t, err)
	assert.Equal(t, 7, days)
	limit, err := ParseIntDefault(c, "limit", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, limit)

	from, err := ParseOptionalTime(c, "from")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *from)
	to, err := ParseOptionalTime(c, "to")
	require.NoError(t, err)
	assert.Equal(t, 10, to.Hour())

	assert.True(t, ParseBoolQuery(c, "unread_only"))
	assert.False(t, ParseBoolQuery(c, "missing"))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"requested", "approved"}, SplitCSV("requested, approved,,"))
	assert.Nil(t, SplitCSV(""))
}

func TestGetClaimsFromContext(t *testing.T) {
	c := testContext("/")
	_, err := GetUserIDFromContext(c)
	assert.ErrorIs(t, err, ErrNoClaims)

	c.Set("claims", &types.Claims{UserID: 5, Username: "eve", Role: "manager"})
	uid, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(5), uid)
	name, err := GetUserNameFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "eve", name)

	c.Set("claims", "garbage")
	_, err = GetClaimsFromContext(c)
	assert.Error(t, err)
}
