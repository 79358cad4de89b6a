// Package testhelpers holds shared golden-file helpers for tests.
package testhelpers

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// OutputGoldie creates a goldie instance for resolved dependency output.
func OutputGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".gold.txt"))
}

// DotGoldie creates a goldie instance for DOT formatter tests.
func DotGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.dot"))
}

// MermaidGoldie creates a goldie instance for Mermaid formatter tests.
func MermaidGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.mmd"))
}
