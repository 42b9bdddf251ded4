package model

type Composer struct {
	Name     string
	YearBorn uint
	YearDied uint
}
