package listing

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	Nom   string
	Email string
	Group string
}

var people = []person{
	{Nom: "Dupont", Email: "jean.dupont@clinique.fr", Group: "A+"},
	{Nom: "Éloïse Martin", Email: "eloise@clinique.fr", Group: "O-"},
	{Nom: "Bernard", Email: "b.bernard@mail.com", Group: "A+"},
}

func byNom(p *person) string   { return p.Nom }
func byEmail(p *person) string { return p.Email }

func TestSearchIsCaseAndAccentInsensitive(t *testing.T) {
	v := NewView(people).Search("ELOISE", byNom)
	assert.Len(t, v.Filtered, 1)
	assert.Equal(t, "Éloïse Martin", v.Filtered[0].Nom)

	v = NewView(people).Search("clinique", byNom, byEmail)
	assert.Len(t, v.Filtered, 2)
}

func TestSearchKeepsSubsetMatchingDeclaredFields(t *testing.T) {
	terms := []string{"", "du", "MAIL", "zzz", "a", "@"}
	for _, term := range terms {
		t.Run(fmt.Sprintf("term %q", term), func(t *testing.T) {
			v := NewView(people).Search(term, byNom, byEmail)
			assert.LessOrEqual(t, len(v.Filtered), len(v.Items))
			for _, p := range v.Items {
				match := term == "" || containsFold(p.Nom, term) || containsFold(p.Email, term)
				assert.Equal(t, match, contains(v.Filtered, p), "item %s", p.Nom)
			}
		})
	}
}

func TestSearchIgnoresUndeclaredFields(t *testing.T) {
	v := NewView(people).Search("A+", byNom, byEmail)
	assert.Empty(t, v.Filtered)
}

func TestFiltersNarrowSequentiallyAndResetRestores(t *testing.T) {
	v := NewView(people).
		Filter(func(p *person) bool { return p.Group == "A+" }).
		Search("bernard", byNom)
	assert.Equal(t, []person{people[2]}, v.Filtered)

	v.Reset()
	assert.Equal(t, v.Items, v.Filtered)

	// Reset copies: narrowing again leaves Items untouched.
	v.Filter(func(p *person) bool { return false })
	assert.Len(t, v.Items, 3)
}

func TestPage(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}
	v := NewView(items)

	p := v.Page(3, 10)
	assert.Equal(t, []int{20, 21, 22}, p.Items)
	assert.Equal(t, 23, p.Total)
	assert.Equal(t, 3, p.TotalPages)

	assert.Empty(t, v.Page(9, 10).Items)
	assert.Len(t, v.Page(0, 10).Items, 10)

	all := v.Page(1, 0)
	assert.Len(t, all.Items, 23)
	assert.Equal(t, 1, all.TotalPages)

	empty := NewView[int](nil).Page(1, 10)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 1, empty.TotalPages)

	huge := v.Page(math.MaxInt, 10)
	assert.Empty(t, huge.Items)
	assert.Equal(t, 3, huge.TotalPages)

	wide := v.Page(2, math.MaxInt)
	assert.Empty(t, wide.Items)
	assert.Len(t, v.Page(1, math.MaxInt).Items, 23)
}

func contains(list []person, p person) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}
