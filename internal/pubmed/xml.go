// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/pdiddy/affilscan/pkg/types"
)

// xmlText collects all character data of an element, including text inside
// inline markup such as <i> or <sup>.
type xmlText string

func (t *xmlText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case xml.CharData:
			b.Write(v)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	*t = xmlText(b.String())
	return nil
}

func (t xmlText) field() types.Field {
	return types.Text(string(t))
}

// ESearch response.
type eSearchResult struct {
	Count            string    `xml:"Count"`
	IDs              []xmlText `xml:"IdList>Id"`
	QueryTranslation xmlText   `xml:"QueryTranslation"`
	Error            xmlText   `xml:"ERROR"`
}

// EFetch response.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
	Error    xmlText         `xml:"ERROR"`
}

type pubmedArticle struct {
	PMID          xmlText     `xml:"MedlineCitation>PMID"`
	Title         xmlText     `xml:"MedlineCitation>Article>ArticleTitle"`
	PubDate       *xmlPubDate `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	AbstractTexts []xmlText   `xml:"MedlineCitation>Article>Abstract>AbstractText"`
	Authors       []xmlAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type xmlPubDate struct {
	Year        xmlText `xml:"Year"`
	Month       xmlText `xml:"Month"`
	Day         xmlText `xml:"Day"`
	MedlineDate xmlText `xml:"MedlineDate"`
}

type xmlAuthor struct {
	LastName     xmlText   `xml:"LastName"`
	ForeName     xmlText   `xml:"ForeName"`
	Affiliations []xmlText `xml:"AffiliationInfo>Affiliation"`
}

func decode(body []byte, v any) error {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.Entity = xml.HTMLEntity
	return d.Decode(v)
}

func parseESearch(body []byte) (SearchResult, error) {
	var doc eSearchResult
	if err := decode(body, &doc); err != nil {
		return SearchResult{}, err
	}
	if doc.Error != "" {
		return SearchResult{}, errors.New(strings.TrimSpace(string(doc.Error)))
	}

	res := SearchResult{QueryTranslation: strings.TrimSpace(string(doc.QueryTranslation))}
	if n, err := strconv.Atoi(strings.TrimSpace(doc.Count)); err == nil {
		res.Count = n
	}
	for _, id := range doc.IDs {
		if s := strings.TrimSpace(string(id)); s != "" {
			res.IDs = append(res.IDs, s)
		}
	}
	return res, nil
}

func parseEFetch(body []byte) ([]types.RawArticle, error) {
	var doc pubmedArticleSet
	if err := decode(body, &doc); err != nil {
		return nil, err
	}
	if doc.Error != "" {
		return nil, errors.New(strings.TrimSpace(string(doc.Error)))
	}

	articles := make([]types.RawArticle, 0, len(doc.Articles))
	for _, a := range doc.Articles {
		articles = append(articles, a.raw())
	}
	return articles, nil
}

func (a pubmedArticle) raw() types.RawArticle {
	raw := types.RawArticle{
		PMID:  a.PMID.field(),
		Title: a.Title.field(),
	}

	if a.PubDate != nil {
		raw.PubDate = &types.PubDate{
			Year:        a.PubDate.Year.field(),
			Month:       a.PubDate.Month.field(),
			Day:         a.PubDate.Day.field(),
			MedlineDate: a.PubDate.MedlineDate.field(),
		}
	}

	firstSeen := false
	for _, au := range a.Authors {
		ra := types.RawAuthor{
			ForeName: au.ForeName.field(),
			LastName: au.LastName.field(),
		}
		if len(au.Affiliations) > 0 {
			ra.Affiliation = au.Affiliations[0].field()
			if !firstSeen {
				raw.FirstAffiliation = ra.Affiliation
				firstSeen = true
			}
		}
		raw.Authors = append(raw.Authors, ra)
	}

	var sections []string
	for _, s := range a.AbstractTexts {
		if s != "" {
			sections = append(sections, string(s))
		}
	}
	raw.Abstract = types.Text(strings.Join(sections, " "))

	return raw
}
