package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_Defaults(t *testing.T) {
	got := Compose(nil, nil, nil)
	assert.Equal(t, DefaultOrder(), got)
}

func TestCompose_PartialOrderPromotesRequested(t *testing.T) {
	got := Compose([]string{"skills", "personal_info"}, nil, nil)

	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, Skills, got[0])
	assert.Equal(t, PersonalInfo, got[1])

	// Everything not named still appears, in catalog order.
	assert.ElementsMatch(t, DefaultOrder(), got)
	rest := got[2:]
	want := []ID{ProfileStatement, Experience, Education, Certifications,
		Achievements, Languages, Memberships, EarlierCareer, Publications, AdditionalInfo}
	assert.Equal(t, want, rest)
}

func TestCompose_HiddenSectionsDropped(t *testing.T) {
	got := Compose(nil, map[string]bool{"publications": false, "earlier_career": false}, nil)

	assert.NotContains(t, got, Publications)
	assert.NotContains(t, got, EarlierCareer)
	assert.Len(t, got, len(DefaultOrder())-2)
}

func TestCompose_RequestedButHiddenIsStillHidden(t *testing.T) {
	// Placement never overrides visibility.
	got := Compose([]string{"skills"}, map[string]bool{"skills": false}, nil)
	assert.NotContains(t, got, Skills)
}

func TestCompose_RequestOverridesProfileVisibility(t *testing.T) {
	profile := map[string]bool{"languages": false, "skills": false}
	request := map[string]bool{"languages": true}

	got := Compose(nil, request, profile)

	assert.Contains(t, got, Languages)
	assert.NotContains(t, got, Skills)
}

func TestCompose_DuplicatesInRequestedOrderIgnored(t *testing.T) {
	got := Compose([]string{"education", "education", "skills"}, nil, nil)

	seen := map[ID]int{}
	for _, id := range got {
		seen[id]++
	}
	assert.Equal(t, 1, seen[Education])
	assert.Equal(t, Education, got[0])
	assert.Equal(t, Skills, got[1])
}

func TestCompose_Idempotent(t *testing.T) {
	order := []string{"experience", "profile_statement"}
	vis := map[string]bool{"achievements": false}

	first := Compose(order, vis, nil)
	second := Compose(order, vis, nil)
	assert.Equal(t, first, second)
}

func TestCompose_FullExplicitOrderRoundTrips(t *testing.T) {
	var order []string
	for _, id := range DefaultOrder() {
		order = append(order, string(id))
	}

	got := Compose(order, nil, nil)
	assert.Equal(t, DefaultOrder(), got)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("personal_info"))
	assert.True(t, Valid("additional_details"))
	assert.False(t, Valid("references"))
	assert.False(t, Valid(""))
}

func TestDefaultOrder_ReturnsCopy(t *testing.T) {
	a := DefaultOrder()
	a[0] = Publications
	assert.Equal(t, PersonalInfo, DefaultOrder()[0])
}
