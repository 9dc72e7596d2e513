package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{BaseURL: serverURL, Timeout: 2 * time.Second})
}

func TestQuestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/quiz/questions/", r.URL.Path)
		io.WriteString(w, `{"results": [
			{"id": 1, "question_text": "I enjoy solving logic puzzles", "category_display": "Logical Thinking"},
			{"id": 2, "question_text": "I like leading group projects", "category_display": "Leadership"}
		]}`)
	}))
	defer server.Close()

	qs, err := newTestClient(server.URL).Questions(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, 1, qs[0].ID)
	assert.Equal(t, "Leadership", qs[1].Category)
}

func TestSubmit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/quiz/submit/", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			io.WriteString(w, `{"success": true}`)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Submit(context.Background(), "session_1_abcdefghi", map[int]int{1: 7, 2: 3})
		require.NoError(t, err)
		assert.Equal(t, "session_1_abcdefghi", got["session_id"])
		answers := got["answers"].(map[string]any)
		assert.Equal(t, float64(7), answers["1"])
	})

	t.Run("remote-reported failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"success": false, "error": "session not found"}`)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Submit(context.Background(), "sid", map[int]int{1: 5})
		var remoteErr *ErrRemote
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "session not found", remoteErr.Message)
	})

	t.Run("failure without reason gets generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"success": false}`)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Submit(context.Background(), "sid", map[int]int{1: 5})
		var remoteErr *ErrRemote
		require.ErrorAs(t, err, &remoteErr)
		assert.Contains(t, remoteErr.Error(), genericFailure)
	})
}

func TestRecommend(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/results/recommend/", r.URL.Path)
			io.WriteString(w, `{
				"top_recommendations": [
					{"career": "Data Scientist", "compatibility_score": 87.5, "explanation": "strong analytical profile", "required_skills": ["Statistics", "Python"], "suitable_for": "analytical minds"}
				],
				"abilities": {"logical_thinking": 8.2, "creativity": 6.1},
				"primary_career": "Data Scientist",
				"primary_compatibility": 87.5,
				"session_id": "sid"
			}`)
		}))
		defer server.Close()

		p, err := newTestClient(server.URL).Recommend(context.Background(), "sid", 5)
		require.NoError(t, err)
		require.Len(t, p.TopRecommendations, 1)
		assert.Equal(t, "Data Scientist", p.PrimaryCareer)
		assert.InDelta(t, 8.2, p.Abilities["logical_thinking"], 0.001)
	})

	t.Run("empty list passes the wire contract", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"top_recommendations": []}`)
		}))
		defer server.Close()

		p, err := newTestClient(server.URL).Recommend(context.Background(), "sid", 5)
		require.NoError(t, err)
		assert.Empty(t, p.TopRecommendations)
	})

	t.Run("schema violations rejected at the boundary", func(t *testing.T) {
		bodies := []string{
			`{"abilities": {}}`,                                                      // missing top_recommendations
			`{"top_recommendations": [{"career": "X"}]}`,                             // missing compatibility_score
			`{"top_recommendations": [{"career": 3, "compatibility_score": 50}]}`,    // wrong type
			`{"top_recommendations": [{"career": "X", "compatibility_score": 150}]}`, // out of range
			`not json at all`,
		}
		for _, body := range bodies {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, body)
			}))
			_, err := newTestClient(server.URL).Recommend(context.Background(), "sid", 5)
			server.Close()

			var invalid *ErrInvalidPayload
			assert.ErrorAs(t, err, &invalid, "body %s", body)
		}
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, `{"error": "model unavailable"}`)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Recommend(context.Background(), "sid", 5)
		var remoteErr *ErrRemote
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusBadGateway, remoteErr.Status)
		assert.Equal(t, "model unavailable", remoteErr.Message)
	})
}

func TestResult(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/results/sid/", r.URL.Path)
			io.WriteString(w, `{"recommendation": {"top_recommendations": [{"career": "UX Designer", "compatibility_score": 74}]}}`)
		}))
		defer server.Close()

		p, err := newTestClient(server.URL).Result(context.Background(), "sid")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "UX Designer", p.TopRecommendations[0].Career)
	})

	t.Run("absent recommendation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"recommendation": null}`)
		}))
		defer server.Close()

		p, err := newTestClient(server.URL).Result(context.Background(), "sid")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("404 means absent, not failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		p, err := newTestClient(server.URL).Result(context.Background(), "sid")
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestCareers(t *testing.T) {
	t.Run("catalog list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/careers/", r.URL.Path)
			io.WriteString(w, `{"results": [
				{"id": 1, "name": "Data Scientist", "description": "Turns data into decisions", "average_salary_range": "$90k-$150k", "job_growth": "High"},
				{"id": 2, "name": "UX Designer", "description": "Designs usable interfaces"}
			]}`)
		}))
		defer server.Close()

		careers, err := newTestClient(server.URL).Careers(context.Background())
		require.NoError(t, err)
		require.Len(t, careers, 2)
		assert.Equal(t, "Data Scientist", careers[0].Name)
		assert.Equal(t, "$90k-$150k", careers[0].AverageSalaryRange)
		assert.Equal(t, 2, careers[1].ID)
	})

	t.Run("malformed list rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"results": "nope"}`)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Careers(context.Background())
		var invalid *ErrInvalidPayload
		require.ErrorAs(t, err, &invalid)
	})
}

func TestCareerDetail(t *testing.T) {
	t.Run("full profile", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/careers/7/", r.URL.Path)
			io.WriteString(w, `{
				"id": 7,
				"name": "Data Scientist",
				"description": "Turns data into decisions",
				"required_skills": ["Statistics", "Python"],
				"suitable_for": "analytical minds",
				"typical_companies": ["Acme Analytics"],
				"required_education": "BSc in a quantitative field",
				"related_careers": ["ML Engineer"],
				"courses": [{"id": 1, "name": "Intro to ML", "provider": "Coursera", "difficulty_level": "Beginner"}],
				"universities": [{"id": 1, "name": "MIT", "location": "Cambridge, MA", "program_name": "Data Science", "ranking": 1}]
			}`)
		}))
		defer server.Close()

		detail, err := newTestClient(server.URL).CareerDetail(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, "Data Scientist", detail.Name)
		assert.Equal(t, []string{"Statistics", "Python"}, detail.RequiredSkills)
		require.Len(t, detail.Courses, 1)
		assert.Equal(t, "Coursera", detail.Courses[0].Provider)
		require.Len(t, detail.Universities, 1)
		assert.Equal(t, "Data Science", detail.Universities[0].Program)
	})

	t.Run("unknown id means absent, not failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		detail, err := newTestClient(server.URL).CareerDetail(context.Background(), 99)
		require.NoError(t, err)
		assert.Nil(t, detail)
	})
}

func TestViewCareer(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/results/view-career/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"status": "ok"}`)
	}))
	defer server.Close()

	err := newTestClient(server.URL).ViewCareer(context.Background(), "sid", "Data Scientist")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", got["career"])
}

func TestUnreachableServiceMapsToUnavailable(t *testing.T) {
	// Port 1 is never listening.
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	_, err := c.Questions(context.Background())
	var unavail *ErrUnavailable
	require.True(t, errors.As(err, &unavail))
}
