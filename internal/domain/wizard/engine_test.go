package wizard

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuehub/internal/domain/flow"
)

func newTestEngine() *Engine {
	return NewEngine(flow.DefaultCatalog())
}

func boolPtr(v bool) *bool { return &v }

func photos(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("/static/uploads/p%d.jpg", i)
	}
	return out
}

// validHouseAnswers satisfies every step of the house flow.
func validHouseAnswers() map[flow.StepKey]Answer {
	return map[flow.StepKey]Answer{
		flow.StepPrivacy:         PrivacyAnswer{Option: "entire_place"},
		flow.StepLocation:        LocationAnswer{Address: "Lakeside, Pokhara"},
		flow.StepBasics:          BasicsAnswer{Guests: 4, Bedrooms: 2, Beds: 3, HasLock: boolPtr(true)},
		flow.StepOccupancy:       OccupancyAnswer{Option: "family"},
		flow.StepDescribe:        DescribeAnswer{Amenities: []string{"wifi", "kitchen"}},
		flow.StepPhotos:          PhotosAnswer{Photos: photos(5)},
		flow.StepTitle:           TitleAnswer{Title: "Lake view cottage"},
		flow.StepSetPrice:        PriceAnswer{Amount: 100},
		flow.StepSetWeekendPrice: WeekendPriceAnswer{Amount: 130},
		flow.StepDiscounts:       DiscountsAnswer{Discounts: []string{"weekly"}},
	}
}

// walk answers the current step from answers and advances until the flow completes.
func walk(t *testing.T, e *Engine, s State, answers map[flow.StepKey]Answer) State {
	t.Helper()
	for i := 0; i < 50; i++ {
		key := e.CurrentStep(s)
		if a, ok := answers[key]; ok {
			var err error
			s, err = e.SetAnswer(s, key, a)
			require.NoError(t, err)
		}
		next, tr, err := e.Advance(s)
		require.NoError(t, err, "step %s", key)
		if tr == TransitionComplete {
			return next
		}
		s = next
	}
	t.Fatal("flow did not complete")
	return s
}

func TestStart(t *testing.T) {
	e := newTestEngine()

	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Index)
	assert.Empty(t, s.Answers)
	assert.Equal(t, flow.StepPrivacy, e.CurrentStep(s))
	assert.Equal(t, 0.0, e.Progress(s))

	_, err = e.Start("castle")
	assert.ErrorIs(t, err, flow.ErrUnknownCategory)
}

func TestSetAnswer_ShapeMismatch(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)

	_, err = e.SetAnswer(s, flow.StepLocation, TitleAnswer{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)

	_, err = e.SetAnswer(s, flow.StepLocation, nil)
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)

	_, err = e.SetAnswer(s, flow.StepCapacity, CapacityAnswer{MaxGuests: 3})
	assert.ErrorIs(t, err, ErrStepNotInFlow)
}

func TestSetAnswer_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)

	next, err := e.SetAnswer(s, flow.StepPrivacy, PrivacyAnswer{Option: "private_room"})
	require.NoError(t, err)

	assert.Empty(t, s.Answers)
	assert.Len(t, next.Answers, 1)
}

func TestAdvance_SucceedsIffCanAdvance(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)
	answers := validHouseAnswers()

	for {
		key := e.CurrentStep(s)

		// Before answering: only optional steps may move on.
		can := e.CanAdvance(s)
		next, tr, err := e.Advance(s)
		if can {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, ErrStepNotReady)
			assert.Equal(t, s.Index, next.Index)
		}

		if a, ok := answers[key]; ok {
			s, err = e.SetAnswer(s, key, a)
			require.NoError(t, err)
		}
		require.True(t, e.CanAdvance(s), "step %s", key)

		before := s.Index
		next, tr, err = e.Advance(s)
		require.NoError(t, err)
		if tr == TransitionComplete {
			assert.Equal(t, s.Flow.Len()-1, next.Index)
			break
		}
		assert.Equal(t, TransitionNext, tr)
		assert.Equal(t, before+1, next.Index)
		s = next
	}
}

func TestProgress_MonotonicAndOneAtLastStep(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)
	answers := validHouseAnswers()

	last := -1.0
	for {
		p := e.Progress(s)
		assert.GreaterOrEqual(t, p, last)
		last = p

		key := e.CurrentStep(s)
		if a, ok := answers[key]; ok {
			s, err = e.SetAnswer(s, key, a)
			require.NoError(t, err)
		}
		next, tr, err := e.Advance(s)
		require.NoError(t, err)
		if tr == TransitionComplete {
			break
		}
		s = next
	}
	assert.Equal(t, 1.0, e.Progress(s))
	assert.Equal(t, s.Flow.Len()-1, s.Index)
}

func TestProgress_SingleStepFlow(t *testing.T) {
	c, err := flow.NewCatalog(flow.Definition{Category: "kiosk", Pricing: flow.PricingHourly, Steps: []flow.StepKey{flow.StepTitle}})
	require.NoError(t, err)
	e := NewEngine(c)

	s, err := e.Start("kiosk")
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Progress(s))

	s, err = e.SetAnswer(s, flow.StepTitle, TitleAnswer{Title: "Kiosk"})
	require.NoError(t, err)
	_, tr, err := e.Advance(s)
	require.NoError(t, err)
	assert.Equal(t, TransitionComplete, tr)
}

func TestRetreat(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)

	same, tr := e.Retreat(s)
	assert.Equal(t, TransitionExit, tr)
	assert.Equal(t, 0, same.Index)

	s, err = e.SetAnswer(s, flow.StepPrivacy, PrivacyAnswer{Option: "entire_place"})
	require.NoError(t, err)
	s, _, err = e.Advance(s)
	require.NoError(t, err)

	back, tr := e.Retreat(s)
	assert.Equal(t, TransitionPrevious, tr)
	assert.Equal(t, 0, back.Index)
}

func TestRetreatThenAdvance_RoundTrip(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)
	answers := validHouseAnswers()

	// Move to the discounts step with every earlier answer filled in.
	for e.CurrentStep(s) != flow.StepDiscounts {
		key := e.CurrentStep(s)
		if a, ok := answers[key]; ok {
			s, err = e.SetAnswer(s, key, a)
			require.NoError(t, err)
		}
		s, _, err = e.Advance(s)
		require.NoError(t, err)
	}

	for s.Index > 0 {
		back, tr := e.Retreat(s)
		require.Equal(t, TransitionPrevious, tr)

		again, tr, err := e.Advance(back)
		require.NoError(t, err)
		require.Equal(t, TransitionNext, tr)

		assert.Equal(t, s.Index, again.Index)
		assert.Equal(t, s.Answers, again.Answers)
		s = back
	}
}

// House flow, photos step: 3 photos block, 5 photos allow.
func TestPhotos_NeedFiveToAdvance(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)
	answers := validHouseAnswers()

	for e.CurrentStep(s) != flow.StepPhotos {
		key := e.CurrentStep(s)
		if a, ok := answers[key]; ok {
			s, err = e.SetAnswer(s, key, a)
			require.NoError(t, err)
		}
		s, _, err = e.Advance(s)
		require.NoError(t, err)
	}

	uploaded := photos(3)
	s, err = e.SetAnswer(s, flow.StepPhotos, PhotosAnswer{Photos: uploaded})
	require.NoError(t, err)
	assert.False(t, e.CanAdvance(s))
	_, _, err = e.Advance(s)
	assert.ErrorIs(t, err, ErrStepNotReady)

	uploaded = append(uploaded, "/static/uploads/p3.jpg", "/static/uploads/p4.jpg")
	s, err = e.SetAnswer(s, flow.StepPhotos, PhotosAnswer{Photos: uploaded})
	require.NoError(t, err)
	assert.True(t, e.CanAdvance(s))
}

func TestPhotos_CappedAtTen(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryHouse)
	require.NoError(t, err)

	s, err = e.SetAnswer(s, flow.StepPhotos, PhotosAnswer{Photos: photos(14)})
	require.NoError(t, err)

	a, ok := e.Answer(s, flow.StepPhotos)
	require.True(t, ok)
	assert.Len(t, a.(PhotosAnswer).Photos, MaxPhotos)
	assert.Equal(t, "/static/uploads/p9.jpg", a.(PhotosAnswer).Photos[9])
}

// Title step truncates to 32 characters; whitespace-only titles block.
func TestTitle_BlankBlocksAndLongIsTruncated(t *testing.T) {
	e := newTestEngine()
	s, err := e.Restore(flow.CategoryHouse, 6, nil)
	require.NoError(t, err)
	require.Equal(t, flow.StepTitle, e.CurrentStep(s))

	s, err = e.SetAnswer(s, flow.StepTitle, TitleAnswer{Title: "   "})
	require.NoError(t, err)
	assert.False(t, e.CanAdvance(s))

	long := strings.Repeat("abcdefghij", 4)
	s, err = e.SetAnswer(s, flow.StepTitle, TitleAnswer{Title: long})
	require.NoError(t, err)

	a, _ := e.Answer(s, flow.StepTitle)
	assert.Equal(t, long[:32], a.(TitleAnswer).Title)
	assert.True(t, e.CanAdvance(s))
}

func TestTitle_TruncatesRunes(t *testing.T) {
	a := TitleAnswer{Title: strings.Repeat("घ", 40)}.normalize().(TitleAnswer)
	assert.Equal(t, MaxTitleLength, len([]rune(a.Title)))
}

func TestWeekendPriceSuggestedOnEnter(t *testing.T) {
	e := newTestEngine()
	idx := 8
	s, err := e.Restore(flow.CategoryHouse, idx, nil)
	require.NoError(t, err)
	require.Equal(t, flow.StepSetPrice, e.CurrentStep(s))

	s, err = e.SetAnswer(s, flow.StepSetPrice, PriceAnswer{Amount: 100})
	require.NoError(t, err)
	s, _, err = e.Advance(s)
	require.NoError(t, err)

	require.Equal(t, flow.StepSetWeekendPrice, e.CurrentStep(s))
	a, ok := e.Answer(s, flow.StepSetWeekendPrice)
	require.True(t, ok)
	assert.Equal(t, 120.0, a.(WeekendPriceAnswer).Amount)
	assert.True(t, e.CanAdvance(s))
}

func TestWeekendPriceSuggestionKeepsHostValue(t *testing.T) {
	e := newTestEngine()
	s, err := e.Restore(flow.CategoryHouse, 8, map[flow.StepKey]Answer{
		flow.StepSetPrice:        PriceAnswer{Amount: 100},
		flow.StepSetWeekendPrice: WeekendPriceAnswer{Amount: 150},
	})
	require.NoError(t, err)

	s, _, err = e.Advance(s)
	require.NoError(t, err)
	a, _ := e.Answer(s, flow.StepSetWeekendPrice)
	assert.Equal(t, 150.0, a.(WeekendPriceAnswer).Amount)
}

func TestDiscounts_NoMinimum(t *testing.T) {
	e := newTestEngine()
	s, err := e.Restore(flow.CategoryHouse, 10, nil)
	require.NoError(t, err)
	require.Equal(t, flow.StepDiscounts, e.CurrentStep(s))
	assert.True(t, e.CanAdvance(s))

	s, err = e.SetAnswer(s, flow.StepDiscounts, DiscountsAnswer{})
	require.NoError(t, err)
	_, tr, err := e.Advance(s)
	require.NoError(t, err)
	assert.Equal(t, TransitionComplete, tr)
}

func TestHallFlowCompletes(t *testing.T) {
	e := newTestEngine()
	s, err := e.Start(flow.CategoryWeddingHall)
	require.NoError(t, err)

	done := walk(t, e, s, map[flow.StepKey]Answer{
		flow.StepLocation:      LocationAnswer{Address: "Thamel, Kathmandu"},
		flow.StepCapacity:      CapacityAnswer{MaxGuests: 300},
		flow.StepDescribe:      DescribeAnswer{Amenities: []string{"stage", "parking"}},
		flow.StepPhotos:        PhotosAnswer{Photos: photos(6)},
		flow.StepTitle:         TitleAnswer{Title: "Royal Banquet"},
		flow.StepSetHourlyRate: HourlyRateAnswer{Amount: 5000},
	})
	assert.Equal(t, done.Flow.Len()-1, done.Index)
}

func TestRestore_Rejects(t *testing.T) {
	e := newTestEngine()

	_, err := e.Restore(flow.CategoryHouse, 11, nil)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = e.Restore(flow.CategoryHouse, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = e.Restore(flow.CategoryHouse, 0, map[flow.StepKey]Answer{flow.StepCapacity: CapacityAnswer{MaxGuests: 1}})
	assert.ErrorIs(t, err, ErrStepNotInFlow)

	_, err = e.Restore(flow.CategoryHouse, 0, map[flow.StepKey]Answer{flow.StepTitle: LocationAnswer{Address: "x"}})
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)
}

func TestRules(t *testing.T) {
	cases := []struct {
		name string
		a    Answer
		ok   bool
	}{
		{"privacy unknown option", PrivacyAnswer{Option: "castle"}, false},
		{"privacy", PrivacyAnswer{Option: "shared_room"}, true},
		{"location blank", LocationAnswer{Address: "  \t"}, false},
		{"basics lock unanswered", BasicsAnswer{Guests: 1, Bedrooms: 1, Beds: 1}, false},
		{"basics lock no", BasicsAnswer{Guests: 1, Bedrooms: 1, Beds: 1, HasLock: boolPtr(false)}, true},
		{"basics zero beds", BasicsAnswer{Guests: 1, Bedrooms: 1, Beds: 0, HasLock: boolPtr(true)}, false},
		{"occupancy", OccupancyAnswer{Option: "me"}, true},
		{"describe empty", DescribeAnswer{}, false},
		{"price zero", PriceAnswer{Amount: 0}, false},
		{"price negative", PriceAnswer{Amount: -5}, false},
		{"weekend price", WeekendPriceAnswer{Amount: 0.5}, true},
		{"capacity zero", CapacityAnswer{}, false},
		{"hourly", HourlyRateAnswer{Amount: 12}, true},
		{"finish", FinishAnswer{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, Valid(tc.a.normalize()))
		})
	}
}

func TestDescribe_BlankAmenitiesDropped(t *testing.T) {
	a := DescribeAnswer{Amenities: []string{" ", "", "wifi", "wifi"}}.normalize().(DescribeAnswer)
	assert.Equal(t, []string{"wifi"}, a.Amenities)
}
