// Package bleve indexes note contents for full-text search.
package bleve

import (
	"strconv"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"

	"github.com/aknip/notedesk"
)

type NoteIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it with the note mapping when it
// does not exist yet.
func (s *NoteIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, noteMapping())
	}
	if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *NoteIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func noteMapping() mapping.IndexMapping {
	cm := bleve.NewTextFieldMapping()
	cm.Analyzer = en.AnalyzerName

	dm := bleve.NewDocumentMapping()
	dm.AddFieldMappingsAt("content", cm)

	m := bleve.NewIndexMapping()
	m.AddDocumentMapping("note", dm)
	return m
}

func (s *NoteIndex) Index(note *notedesk.Note) error {
	data := map[string]interface{}{
		"content":  note.Content,
		"personID": strconv.Itoa(note.PersonID),
	}

	return s.index.Index(strconv.Itoa(note.ID), data)
}

func (s *NoteIndex) Delete(id int) error {
	return s.index.Delete(strconv.Itoa(id))
}

// Search runs the query restricted to search.IDs. An empty id list
// matches nothing: the caller decides what the user may see, the index
// never widens it.
func (s *NoteIndex) Search(search notedesk.NoteSearch) (notedesk.NoteSearchResults, error) {
	q := andQ(
		query.NewMatchAllQuery(),
		s.searchContent(search.Q),
		s.searchIDs(search.IDs),
	)

	searchRequest := bleve.NewSearchRequest(q)
	searchRequest.SortBy([]string{"_id"})

	if search.Limit > 0 {
		searchRequest.Size = int(search.Limit)
	}
	searchRequest.From = int(search.Offset)

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return notedesk.NoteSearchResults{}, err
	}

	ids := make([]int, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i], err = strconv.Atoi(hit.ID)
		if err != nil {
			return notedesk.NoteSearchResults{}, err
		}
	}

	return notedesk.NoteSearchResults{
		IDs: ids,
		Pagination: notedesk.Pagination{
			Total:  searchResults.Total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func (s *NoteIndex) searchContent(queryString string) query.Query {
	analyzer := s.index.Mapping().AnalyzerNamed(en.AnalyzerName)
	tokens := analyzer.Analyze([]byte(queryString))
	if len(tokens) == 0 {
		return nil
	}

	conjuncts := make([]query.Query, len(tokens))
	for i, token := range tokens {
		conjuncts[i] = &query.PrefixQuery{
			Prefix:   string(token.Term),
			FieldVal: "content",
		}
	}

	return query.NewConjunctionQuery(conjuncts)
}

func (*NoteIndex) searchIDs(ids []int) query.Query {
	docIDs := make([]string, len(ids))
	for i, id := range ids {
		docIDs[i] = strconv.Itoa(id)
	}
	return query.NewDocIDQuery(docIDs)
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}
