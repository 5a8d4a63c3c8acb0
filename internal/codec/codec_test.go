package codec_test

import (
	"testing"

	"github.com/alexanderramin/siteworks/internal/codec"
	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/store"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_SeedGolden(t *testing.T) {
	b, err := codec.Encode(store.Seed(), codec.FormatJSON)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "seed_snapshot", b)
}

func TestRoundTrip_Idempotent(t *testing.T) {
	for _, f := range []codec.Format{codec.FormatJSON, codec.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			first, err := codec.Encode(store.Seed(), f)
			require.NoError(t, err)

			decoded, err := codec.Decode(first, f)
			require.NoError(t, err)
			second, err := codec.Encode(decoded, f)
			require.NoError(t, err)

			decodedAgain, err := codec.Decode(second, f)
			require.NoError(t, err)
			third, err := codec.Encode(decodedAgain, f)
			require.NoError(t, err)

			assert.Equal(t, string(first), string(second))
			assert.Equal(t, string(second), string(third))
			assert.Equal(t, store.Seed(), decoded)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":               ``,
		"not json":            `{{{`,
		"top-level array":     `[]`,
		"projects not a list": `{"projects": {}, "tasks": [], "payments": [], "vendorId": 1}`,
		"missing tasks":       `{"projects": [], "payments": [], "vendorId": 1}`,
		"task is not record":  `{"projects": [], "tasks": [7], "payments": [], "vendorId": 1}`,
		"bad task status":     `{"projects": [], "tasks": [{"id":1,"projectId":1,"name":"x","vendorId":1,"category":"c","week_id":1,"completed_percent":0,"status":"paused"}], "payments": [], "vendorId": 1}`,
		"bad request date":    `{"projects": [], "tasks": [], "payments": [{"id":1,"projectId":1,"taskId":1,"vendorId":1,"status":"pending","requestDate":"March 5"}], "vendorId": 1}`,
		"negative cost":       `{"projects": [{"id":1,"name":"p","userId":1,"siteManagerId":1,"nweeks":1,"total_cost":-5,"status":"active"}], "tasks": [], "payments": [], "vendorId": 1}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode([]byte(doc), codec.FormatJSON)
			require.Error(t, err)
			assert.ErrorIs(t, err, codec.ErrMalformed)
		})
	}
}

func TestDecode_MinimalDocument(t *testing.T) {
	s, err := codec.Decode([]byte(`{"projects": [], "tasks": [], "payments": [], "vendorId": 4}`), codec.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 4, s.VendorID)
	assert.Equal(t, domain.SnapshotVersion, s.Version)
	assert.NotNil(t, s.Tasks)
}

func TestDecode_BlankEvidenceBecomesAbsent(t *testing.T) {
	doc := `{"projects": [{"id":1,"name":"p","userId":1,"siteManagerId":1,"nweeks":2,"total_cost":10,"status":"active"}],
		"tasks": [{"id":1,"projectId":1,"name":"t","vendorId":1,"category":"c","week_id":1,"completed_percent":0,"images_before":"","notes":null,"status":"active"}],
		"payments": [], "vendorId": 1}`
	s, err := codec.Decode([]byte(doc), codec.FormatJSON)
	require.NoError(t, err)
	require.Len(t, s.Tasks, 1)
	assert.Nil(t, s.Tasks[0].ImagesBefore)
	assert.Nil(t, s.Tasks[0].ImagesAfter)
	assert.Nil(t, s.Tasks[0].Notes)
}

func TestDecode_YAMLMalformed(t *testing.T) {
	_, err := codec.Decode([]byte("projects: nope\ntasks: []\npayments: []\nvendorId: 1\n"), codec.FormatYAML)
	assert.ErrorIs(t, err, codec.ErrMalformed)

	_, err = codec.Decode([]byte("projects: [\n"), codec.FormatYAML)
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_YAMLUnquotedDates(t *testing.T) {
	doc := `projects:
  - {id: 1, name: p, userId: 1, siteManagerId: 1, nweeks: 2, total_cost: 10, status: active}
tasks:
  - {id: 1, projectId: 1, name: t, vendorId: 1, category: c, week_id: 1, completed_percent: 40, status: active}
payments:
  - id: 1
    projectId: 1
    taskId: 1
    vendorId: 1
    status: pending
    requestDate: 2024-02-12
  - id: 2
    projectId: 1
    taskId: 1
    vendorId: 1
    status: paid
    requestDate: "2024-01-30"
vendorId: 1
`
	s, err := codec.Decode([]byte(doc), codec.FormatYAML)
	require.NoError(t, err)
	require.Len(t, s.Payments, 2)
	assert.Equal(t, "2024-02-12", s.Payments[0].RequestDate.String())
	assert.Equal(t, "2024-01-30", s.Payments[1].RequestDate.String())
}

func TestParseFormat(t *testing.T) {
	f, err := codec.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, codec.FormatYAML, f)

	f, err = codec.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, codec.FormatJSON, f)

	_, err = codec.ParseFormat("toml")
	assert.Error(t, err)

	assert.Equal(t, codec.FormatYAML, codec.FormatForPath("/tmp/state.yaml"))
	assert.Equal(t, codec.FormatJSON, codec.FormatForPath("/tmp/state"))
}
