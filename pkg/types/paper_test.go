// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldOrUnknown(t *testing.T) {
	assert.Equal(t, Unknown, Field{}.OrUnknown())
	assert.Equal(t, Unknown, Text("").OrUnknown())
	assert.Equal(t, "Cancer", Text("Cancer").OrUnknown())
}

func TestPubDateFormat(t *testing.T) {
	tests := []struct {
		name string
		date *PubDate
		want string
	}{
		{"nil", nil, "unknown"},
		{"empty", &PubDate{}, "unknown"},
		{"year", &PubDate{Year: Text("2021")}, "2021"},
		{"year month", &PubDate{Year: Text("2021"), Month: Text("06")}, "2021-06"},
		{"full", &PubDate{Year: Text("2021"), Month: Text("Jun"), Day: Text("3")}, "2021-Jun-3"},
		{"day without month ignored", &PubDate{Year: Text("2021"), Day: Text("3")}, "2021"},
		{"medline", &PubDate{MedlineDate: Text("2021 Jun-Jul")}, "2021 Jun-Jul"},
		{"year wins over medline", &PubDate{Year: Text("2020"), MedlineDate: Text("2021 Jun-Jul")}, "2020"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.Format())
		})
	}
}

func TestRawAuthorFullName(t *testing.T) {
	tests := []struct {
		name   string
		author RawAuthor
		want   string
	}{
		{"both", RawAuthor{ForeName: Text("Jane"), LastName: Text("Doe")}, "Jane Doe"},
		{"last only", RawAuthor{LastName: Text("Doe")}, "Doe"},
		{"fore only", RawAuthor{ForeName: Text("Jane")}, "Jane"},
		{"padded", RawAuthor{ForeName: Text(" Jane "), LastName: Text(" Doe ")}, "Jane Doe"},
		{"none", RawAuthor{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.author.FullName())
		})
	}
}
