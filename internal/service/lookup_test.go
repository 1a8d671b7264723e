package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/edulookup/internal/lookup"
	"github.com/mwhite7112/edulookup/internal/provider"
)

func careerProfile(t *testing.T) provider.Profile {
	t.Helper()
	c, err := provider.Default()
	require.NoError(t, err)
	p, ok := c.Get("career-major")
	require.True(t, ok)
	return p
}

func docsProfile(t *testing.T) provider.Profile {
	t.Helper()
	c, err := provider.Default()
	require.NoError(t, err)
	p, ok := c.Get("edu-docs")
	require.True(t, ok)
	return p
}

func jsonResponse(body string) lookup.RawResponse {
	return lookup.RawResponse{Body: []byte(body), MediaType: "application/json;charset=UTF-8", StatusCode: 200}
}

const computerBody = `{"dataSearch":{"content":[
	{"majorSeq":"101","majorName":"컴퓨터공학과","mainCourse":"<b>알고리즘</b>, 자료구조","lClass":"공학계열"},
	{"majorSeq":"102","majorName":"전자공학과","mainCourse":"회로이론","lClass":"공학계열"}
]}}`

func TestLookup_ComputerScenario(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport)

	transport.EXPECT().Get(mock.Anything, mock.MatchedBy(func(req lookup.Request) bool {
		return req.QueryText == "컴퓨터" &&
			req.Params.Get("apiKey") == "token" &&
			req.Params.Get("gubun") == "univ_list" &&
			strings.HasPrefix(req.Endpoint, "https://www.career.go.kr/")
	})).Return(jsonResponse(computerBody), nil)

	rs, err := svc.Lookup(context.Background(), " 컴퓨터 ", "")
	require.NoError(t, err)

	assert.Equal(t, "career-major", rs.Provider)
	assert.Equal(t, "컴퓨터", rs.Query)
	assert.Equal(t, "univ_list", rs.Collection)
	require.Len(t, rs.Records, 1)
	assert.Equal(t, "컴퓨터공학과", rs.Records[0].Fields["majorName"])
	assert.Equal(t, "알고리즘, 자료구조", rs.Records[0].Fields["mainCourse"])
}

func TestLookup_StrayAngleBracketStillMatches(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport)
	transport.EXPECT().Get(mock.Anything, mock.Anything).Return(jsonResponse(`{"dataSearch":{"content":[
		{"majorName":"C<C++ 프로그래밍학과","mainCourse":"a<b"},
		{"majorName":"전자공학과","mainCourse":"회로이론"}
	]}}`), nil)

	rs, err := svc.Lookup(context.Background(), "프로그래밍", "")
	require.NoError(t, err)
	require.Len(t, rs.Records, 1)
	assert.Equal(t, "C<C++ 프로그래밍학과", rs.Records[0].Fields["majorName"])
	assert.Equal(t, "a<b", rs.Records[0].Fields["mainCourse"])
}

func TestLookup_Idempotent(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport)
	transport.EXPECT().Get(mock.Anything, mock.Anything).Return(jsonResponse(computerBody), nil).Times(2)

	first, err := svc.Lookup(context.Background(), "공학", "")
	require.NoError(t, err)
	second, err := svc.Lookup(context.Background(), "공학", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first.Records, 2)
}

func TestLookup_BlankQuerySkipsProvider(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	recorder := NewMockLookupRecorder(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport, WithRecorder(recorder))

	rs, err := svc.Lookup(context.Background(), "   ", "")
	require.NoError(t, err)
	assert.NotNil(t, rs.Records)
	assert.Empty(t, rs.Records)
}

func TestLookup_UnknownCollectionSkipsProvider(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	recorder := NewMockLookupRecorder(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport, WithRecorder(recorder))

	recorder.EXPECT().RecordLookup(mock.Anything, mock.MatchedBy(func(ev LookupEvent) bool {
		return ev.Outcome == OutcomeInvalidRequest && ev.Collection == "grad_list"
	})).Return(nil)

	_, err := svc.Lookup(context.Background(), "컴퓨터", "grad_list")
	require.ErrorIs(t, err, lookup.ErrUnknownCollection)
}

func TestLookup_TransportError(t *testing.T) {
	t.Parallel()

	t.Run("typed error passes through", func(t *testing.T) {
		t.Parallel()

		transport := NewMockTransport(t)
		svc := NewLookupService(careerProfile(t), "token", "", transport)
		want := &lookup.TransportError{StatusCode: 503, Message: "unexpected status"}
		transport.EXPECT().Get(mock.Anything, mock.Anything).Return(lookup.RawResponse{}, want)

		rs, err := svc.Lookup(context.Background(), "컴퓨터", "")
		var terr *lookup.TransportError
		require.ErrorAs(t, err, &terr)
		assert.Same(t, want, terr)
		assert.Nil(t, rs.Records)
	})

	t.Run("untyped error is wrapped", func(t *testing.T) {
		t.Parallel()

		transport := NewMockTransport(t)
		svc := NewLookupService(careerProfile(t), "token", "", transport)
		cause := errors.New("connection reset")
		transport.EXPECT().Get(mock.Anything, mock.Anything).Return(lookup.RawResponse{}, cause)

		_, err := svc.Lookup(context.Background(), "컴퓨터", "")
		var terr *lookup.TransportError
		require.ErrorAs(t, err, &terr)
		assert.ErrorIs(t, err, cause)
	})
}

func TestLookup_NormalizationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		target  error
		outcome Outcome
	}{
		{name: "malformed", body: `{"dataSearch":`, target: lookup.ErrMalformed, outcome: OutcomeMalformed},
		{name: "unknown shape", body: `{"error":{"code":"E01"}}`, target: lookup.ErrUnknownShape, outcome: OutcomeUnknownShape},
		{name: "count mismatch", body: `{"dataSearch":{"content":[],"totalCount":3}}`, target: lookup.ErrUnknownShape, outcome: OutcomeUnknownShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := NewMockTransport(t)
			recorder := NewMockLookupRecorder(t)
			svc := NewLookupService(careerProfile(t), "token", "", transport, WithRecorder(recorder))

			transport.EXPECT().Get(mock.Anything, mock.Anything).Return(jsonResponse(tt.body), nil)
			recorder.EXPECT().RecordLookup(mock.Anything, mock.MatchedBy(func(ev LookupEvent) bool {
				return ev.Outcome == tt.outcome && ev.ResultCount == 0 && ev.Failed()
			})).Return(nil)

			rs, err := svc.Lookup(context.Background(), "컴퓨터", "")
			require.ErrorIs(t, err, tt.target)
			assert.Nil(t, rs.Records)
		})
	}
}

func TestLookup_HeaderOverridesDeclaredFormat(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport)

	body := `<dataSearch><content><majorName>컴퓨터공학과</majorName><mainCourse>자료구조</mainCourse></content></dataSearch>`
	transport.EXPECT().Get(mock.Anything, mock.Anything).Return(lookup.RawResponse{
		Body: []byte(body), MediaType: "text/xml; charset=utf-8", StatusCode: 200,
	}, nil)

	rs, err := svc.Lookup(context.Background(), "컴퓨터", "")
	require.NoError(t, err)
	require.Len(t, rs.Records, 1)
	assert.Equal(t, "자료구조", rs.Records[0].Fields["mainCourse"])
}

func TestLookup_AmbiguousHeaderUsesProfileFormat(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport)
	transport.EXPECT().Get(mock.Anything, mock.Anything).Return(lookup.RawResponse{
		Body: []byte(computerBody), MediaType: "text/html", StatusCode: 200,
	}, nil)

	rs, err := svc.Lookup(context.Background(), "컴퓨터", "")
	require.NoError(t, err)
	assert.Len(t, rs.Records, 1)
}

func TestLookup_CapsAtPageSize(t *testing.T) {
	t.Parallel()

	var items []string
	for i := range 15 {
		items = append(items, fmt.Sprintf(`{"majorName":"컴퓨터%d"}`, i))
	}
	body := `{"dataSearch":{"content":[` + strings.Join(items, ",") + `]}}`

	transport := NewMockTransport(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport)
	transport.EXPECT().Get(mock.Anything, mock.Anything).Return(jsonResponse(body), nil)

	rs, err := svc.Lookup(context.Background(), "컴퓨터", "")
	require.NoError(t, err)
	require.Len(t, rs.Records, lookup.DefaultPageSize)
	assert.Equal(t, "컴퓨터0", rs.Records[0].Fields["majorName"])
}

func TestLookup_XMLDocuments(t *testing.T) {
	t.Parallel()

	body := `<?xml version="1.0" encoding="UTF-8"?>
<SearchResult>
  <TotalCount>2</TotalCount>
  <Document><DOCID>1</DOCID><TITLE>&lt;b&gt;AI&lt;/b&gt; 기초</TITLE><CONTENT>인공지능 입문</CONTENT></Document>
  <Document><DOCID>2</DOCID><TITLE>수학 교육과정</TITLE><CONTENT>함수</CONTENT></Document>
</SearchResult>`

	transport := NewMockTransport(t)
	svc := NewLookupService(docsProfile(t), "token", "", transport)
	transport.EXPECT().Get(mock.Anything, mock.MatchedBy(func(req lookup.Request) bool {
		return req.Params.Get("collection") == "curriculum" && req.Params.Get("serviceKey") == "token"
	})).Return(lookup.RawResponse{Body: []byte(body), MediaType: "application/xml", StatusCode: 200}, nil)

	rs, err := svc.Lookup(context.Background(), "ai", "curriculum")
	require.NoError(t, err)
	require.Len(t, rs.Records, 1)
	assert.Equal(t, "AI 기초", rs.Records[0].Fields["TITLE"])
	assert.Equal(t, "curriculum", rs.Collection)
}

func TestLookup_SideEffectsAreBestEffort(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	recorder := NewMockLookupRecorder(t)
	publisher := NewMockLookupPublisher(t)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ticks := []time.Time{start, start.Add(120 * time.Millisecond)}
	clock := func() time.Time {
		now := ticks[0]
		if len(ticks) > 1 {
			ticks = ticks[1:]
		}
		return now
	}

	svc := NewLookupService(careerProfile(t), "token", "", transport,
		WithRecorder(recorder), WithPublisher(publisher), withClock(clock))

	transport.EXPECT().Get(mock.Anything, mock.Anything).Return(jsonResponse(computerBody), nil)

	var recorded LookupEvent
	recorder.EXPECT().RecordLookup(mock.Anything, mock.Anything).
		Run(func(_ context.Context, ev LookupEvent) { recorded = ev }).
		Return(errors.New("db down"))
	publisher.EXPECT().PublishLookupCompleted(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	rs, err := svc.Lookup(context.Background(), "컴퓨터", "")
	require.NoError(t, err)
	assert.Len(t, rs.Records, 1)

	assert.Equal(t, OutcomeMatched, recorded.Outcome)
	assert.Equal(t, 1, recorded.ResultCount)
	assert.Equal(t, "career-major", recorded.Provider)
	assert.Equal(t, "univ_list", recorded.Collection)
	assert.Equal(t, 120*time.Millisecond, recorded.Duration)
	assert.Equal(t, start, recorded.At)
	assert.NotEqual(t, uuid.Nil, recorded.ID)
}

func TestLookup_EmptyOutcome(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	publisher := NewMockLookupPublisher(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport, WithPublisher(publisher))

	transport.EXPECT().Get(mock.Anything, mock.Anything).Return(jsonResponse(`{"dataSearch":{"content":[]}}`), nil)
	publisher.EXPECT().PublishLookupCompleted(mock.Anything, mock.MatchedBy(func(ev LookupEvent) bool {
		return ev.Outcome == OutcomeEmpty && !ev.Failed()
	})).Return(nil)

	rs, err := svc.Lookup(context.Background(), "컴퓨터", "")
	require.NoError(t, err)
	assert.NotNil(t, rs.Records)
	assert.Empty(t, rs.Records)
}

func TestLookup_WithProbes(t *testing.T) {
	t.Parallel()

	transport := NewMockTransport(t)
	svc := NewLookupService(careerProfile(t), "token", "", transport,
		WithProbes(lookup.Probe{Name: "v2", Path: []string{"payload"}, Items: "majors"}))

	transport.EXPECT().Get(mock.Anything, mock.Anything).
		Return(jsonResponse(`{"payload":{"majors":[{"majorName":"컴퓨터공학과"}]}}`), nil)

	rs, err := svc.Lookup(context.Background(), "컴퓨터", "")
	require.NoError(t, err)
	assert.Len(t, rs.Records, 1)
}
