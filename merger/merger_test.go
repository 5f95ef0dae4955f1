package merger

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notaneet/ttmerge/model"
)

func parse(t *testing.T, doc string) *model.Timetable {
	t.Helper()
	tt := model.New()
	require.NoError(t, json.Unmarshal([]byte(doc), tt))
	return tt
}

func render(t *testing.T, tt *model.Timetable) string {
	t.Helper()
	out, err := json.Marshal(tt)
	require.NoError(t, err)
	return string(out)
}

func keys(tt *model.Timetable) map[string][]string {
	out := map[string][]string{}
	for _, day := range tt.Days() {
		sched, _ := tt.Day(day)
		out[day] = sched.Slots()
	}
	return out
}

func TestMergeExample(t *testing.T) {
	t1 := parse(t, `{"Mon": {"9am": ["Math"]}}`)
	t2 := parse(t, `{"Mon": {"9am": ["Physics"]}, "Tue": {"10am": ["Art"]}}`)

	got := render(t, Merge(t1, t2))
	assert.Equal(t, `{"Mon":{"9am":["Math","Physics"]},"Tue":{"10am":["Art"]}}`, got)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t1 := parse(t, `{"Mon": {"9am": ["Math"]}}`)
	t2 := parse(t, `{"Mon": {"9am": ["Physics"], "11am": ["Chem"]}, "Tue": {"10am": ["Art"]}}`)
	before1, before2 := render(t, t1), render(t, t2)

	merged := Merge(t1, t2)
	tue, _ := merged.Day("Tue")
	tue.Append("10am", model.ClassList{model.NewClass("Music")})
	mon, _ := merged.Day("Mon")
	mon.Append("11am", model.ClassList{model.NewClass("Bio")})

	assert.Equal(t, before1, render(t, t1))
	assert.Equal(t, before2, render(t, t2))
}

func TestMergeSameKeysReversedOrder(t *testing.T) {
	a := parse(t, `{"Mon": {"9am": ["Math"], "1pm": ["Art"]}, "Wed": {"8am": ["PE"]}}`)
	b := parse(t, `{"Mon": {"9am": ["Physics"]}, "Tue": {"10am": ["Art"]}}`)

	ab, ba := Merge(a, b), Merge(b, a)

	less := func(x, y string) bool { return x < y }
	if diff := cmp.Diff(keys(ab), keys(ba), cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("key sets differ (-ab +ba):\n%s", diff)
	}

	monAB, _ := ab.Day("Mon")
	monBA, _ := ba.Day("Mon")
	l1, _ := monAB.Classes("9am")
	l2, _ := monBA.Classes("9am")
	assert.Equal(t, model.ClassList{model.NewClass("Math"), model.NewClass("Physics")}, l1)
	assert.Equal(t, model.ClassList{model.NewClass("Physics"), model.NewClass("Math")}, l2)
}

func TestMergeDisjointIsUnion(t *testing.T) {
	a := parse(t, `{"Mon": {"9am": ["Math"]}}`)
	b := parse(t, `{"Tue": {"9am": ["Math"]}, "Mon": {"10am": ["Art"]}}`)

	got := render(t, Merge(a, b))
	assert.Equal(t, `{"Mon":{"9am":["Math"],"10am":["Art"]},"Tue":{"9am":["Math"]}}`, got)
}

func TestMergeWithItselfDuplicates(t *testing.T) {
	a := parse(t, `{"Mon": {"9am": ["Math", {"courseId": "CS", "classroom": "R1", "classType": "Lab"}]}}`)

	got := render(t, Merge(a, a))
	assert.Equal(t,
		`{"Mon":{"9am":["Math",{"courseId":"CS","classroom":"R1","classType":"Lab"},`+
			`"Math",{"courseId":"CS","classroom":"R1","classType":"Lab"}]}}`,
		got)
}

func TestMergeNilAndEmpty(t *testing.T) {
	a := parse(t, `{"Mon": {"9am": ["Math"]}}`)

	assert.Equal(t, render(t, a), render(t, Merge(a, nil)))
	assert.Equal(t, render(t, a), render(t, Merge(nil, a)))
	assert.Equal(t, `{}`, render(t, Merge(model.New(), model.New())))
}

func TestMergeAll(t *testing.T) {
	a := parse(t, `{"Mon": {"9am": ["A"]}}`)
	b := parse(t, `{"Mon": {"9am": ["B"]}}`)
	c := parse(t, `{"Mon": {"9am": ["C"]}, "Fri": {}}`)

	assert.Equal(t, `{"Mon":{"9am":["A","B","C"]},"Fri":{}}`, render(t, MergeAll(a, b, c)))
	assert.Equal(t, `{}`, render(t, MergeAll()))
}
