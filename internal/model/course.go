package model

import (
	"fmt"
	"strings"
)

// Course is the closed set of menu sections a dish can belong to.
type Course string

const (
	Starter Course = "Starter"
	Main    Course = "Main"
	Dessert Course = "Dessert"
)

// Courses returns every course in menu order.
func Courses() []Course {
	return []Course{Starter, Main, Dessert}
}

// Valid reports whether c is one of the known courses.
func (c Course) Valid() bool {
	switch c {
	case Starter, Main, Dessert:
		return true
	}
	return false
}

func (c Course) String() string { return string(c) }

// ParseCourse maps user input to a canonical Course, ignoring case and surrounding space.
func ParseCourse(s string) (Course, error) {
	s = strings.TrimSpace(s)
	for _, c := range Courses() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown course %q (must be Starter, Main or Dessert)", s)
}

// Selector picks a course to filter by, or every course.
type Selector string

// All is the identity filter.
const All Selector = "All"

// SelectCourse wraps a course as a selector.
func SelectCourse(c Course) Selector { return Selector(c) }

// Selectors returns All followed by every course.
func Selectors() []Selector {
	out := []Selector{All}
	for _, c := range Courses() {
		out = append(out, SelectCourse(c))
	}
	return out
}

// IsAll reports whether the selector matches every course.
func (s Selector) IsAll() bool { return s == All }

// Course returns the selected course; ok is false for All.
func (s Selector) Course() (Course, bool) {
	if s.IsAll() {
		return "", false
	}
	return Course(s), true
}

// ParseSelector accepts "all" or a course name.
func ParseSelector(s string) (Selector, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(All)) {
		return All, nil
	}
	c, err := ParseCourse(s)
	if err != nil {
		return "", err
	}
	return SelectCourse(c), nil
}
