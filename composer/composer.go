package composer

import (
	"github.com/jsphweid/midirect/model"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

var ErrNotFound = errors.New("composer not found")

// Source looks composers up by name, ignoring case.
type Source interface {
	Lookup(name string) (model.Composer, error)
}

var foldCaser = cases.Fold()

func Key(name string) string {
	return foldCaser.String(name)
}

type Table map[string]model.Composer

func NewTable(composers []model.Composer) Table {
	res := make(Table, len(composers))
	for _, c := range composers {
		res[Key(c.Name)] = c
	}
	return res
}

func (t Table) Lookup(name string) (model.Composer, error) {
	c, ok := t[Key(name)]
	if !ok {
		return model.Composer{}, errors.Wrapf(ErrNotFound, "Composer %s", name)
	}
	return c, nil
}

// Default covers the composers of the ASAP dataset.
var Default = NewTable([]model.Composer{
	{Name: "Bach", YearBorn: 1685, YearDied: 1750},
	{Name: "Balakirev", YearBorn: 1837, YearDied: 1910},
	{Name: "Beethoven", YearBorn: 1770, YearDied: 1827},
	{Name: "Brahms", YearBorn: 1833, YearDied: 1897},
	{Name: "Chopin", YearBorn: 1810, YearDied: 1849},
	{Name: "Debussy", YearBorn: 1862, YearDied: 1918},
	{Name: "Glinka", YearBorn: 1804, YearDied: 1857},
	{Name: "Haydn", YearBorn: 1732, YearDied: 1809},
	{Name: "Liszt", YearBorn: 1811, YearDied: 1886},
	{Name: "Mozart", YearBorn: 1756, YearDied: 1791},
	{Name: "Prokofiev", YearBorn: 1891, YearDied: 1953},
	{Name: "Rachmaninoff", YearBorn: 1873, YearDied: 1943},
	{Name: "Ravel", YearBorn: 1875, YearDied: 1937},
	{Name: "Schubert", YearBorn: 1797, YearDied: 1828},
	{Name: "Schumann", YearBorn: 1810, YearDied: 1856},
	{Name: "Scriabin", YearBorn: 1872, YearDied: 1915},
})
