// internal/handlers/handlers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vocario/internal/handlers"
	"vocario/internal/model"
	"vocario/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// serve は1本のルートだけを持つルーターにリクエストを流す
func serve(t *testing.T, method, pattern, path string, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(b)
		}
	}

	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error
}

func TestUserHandler_CreateUserProfile(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(m *mocks.UserService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "正常系",
			body: map[string]string{"email": "a@x.io"},
			setupMock: func(m *mocks.UserService) {
				m.On("CreateUserProfile", mock.Anything, &model.CreateUserProfileRequest{Email: "a@x.io"}).
					Return(&model.UserProfile{ID: 7, Email: "a@x.io"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "正常系: 前後の空白は検証前に除く",
			body: map[string]string{"email": " a@x.io\t"},
			setupMock: func(m *mocks.UserService) {
				m.On("CreateUserProfile", mock.Anything, &model.CreateUserProfileRequest{Email: "a@x.io"}).
					Return(&model.UserProfile{ID: 7, Email: "a@x.io"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: メール形式が不正",
			body:       map[string]string{"email": "nope"},
			setupMock:  func(m *mocks.UserService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "異常系: 不正なJSON",
			body:       `{"email":`,
			setupMock:  func(m *mocks.UserService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: ストアが拒否",
			body: map[string]string{"email": "dup@x.io"},
			setupMock: func(m *mocks.UserService) {
				m.On("CreateUserProfile", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("STORE_REJECTED", "The store rejected the data.", "", model.ErrValidation)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "STORE_REJECTED",
		},
		{
			name: "異常系: ストア障害",
			body: map[string]string{"email": "down@x.io"},
			setupMock: func(m *mocks.UserService) {
				m.On("CreateUserProfile", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("create: %w", model.ErrUpstream)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewUserService(t)
			tt.setupMock(svc)
			h := handlers.NewUserHandler(svc, testLogger)

			rec := serve(t, http.MethodPost, "/user_profiles", "/user_profiles", h.CreateUserProfile, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorBody(t, rec).Code)
			} else {
				assert.Contains(t, rec.Body.String(), `"email":"a@x.io"`)
			}
		})
	}
}

func TestUserHandler_LookupUser(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("LookupUserID", mock.Anything, "a@x.io").Return(uint(7), nil).Once()
		h := handlers.NewUserHandler(svc, testLogger)

		rec := serve(t, http.MethodGet, "/user_profiles/lookup", "/user_profiles/lookup?email=a@x.io", h.LookupUser, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id": 7}`, rec.Body.String())
	})

	t.Run("存在しない", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("LookupUserID", mock.Anything, "b@x.io").Return(uint(0), fmt.Errorf("lookup: %w", model.ErrNotFound)).Once()
		h := handlers.NewUserHandler(svc, testLogger)

		rec := serve(t, http.MethodGet, "/user_profiles/lookup", "/user_profiles/lookup?email=b@x.io", h.LookupUser, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("email が無い", func(t *testing.T) {
		h := handlers.NewUserHandler(mocks.NewUserService(t), testLogger)

		rec := serve(t, http.MethodGet, "/user_profiles/lookup", "/user_profiles/lookup", h.LookupUser, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email", errorBody(t, rec).Field)
	})
}

func TestUserHandler_CreateLangProfile(t *testing.T) {
	const pattern = "/users/{user_id}/lang_profiles"

	t.Run("正常系", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("CreateLangProfile", mock.Anything, uint(3), &model.CreateLangProfileRequest{Lang: "es", Level: "A1"}).
			Return(&model.LangProfile{ID: 1, UserID: 3, Lang: "es", Level: "A1"}, nil).Once()
		h := handlers.NewUserHandler(svc, testLogger)

		rec := serve(t, http.MethodPost, pattern, "/users/3/lang_profiles", h.CreateLangProfile, map[string]string{"lang": "es", "level": "A1"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user_id が数値でない", func(t *testing.T) {
		h := handlers.NewUserHandler(mocks.NewUserService(t), testLogger)

		rec := serve(t, http.MethodPost, pattern, "/users/abc/lang_profiles", h.CreateLangProfile, map[string]string{"lang": "es", "level": "A1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_URL_PARAM", errorBody(t, rec).Code)
	})

	t.Run("level が無い", func(t *testing.T) {
		h := handlers.NewUserHandler(mocks.NewUserService(t), testLogger)

		rec := serve(t, http.MethodPost, pattern, "/users/3/lang_profiles", h.CreateLangProfile, map[string]string{"lang": "es"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "level", errorBody(t, rec).Field)
	})
}

func TestDeckHandler(t *testing.T) {
	t.Run("デッキ一覧が空なら空配列", func(t *testing.T) {
		svc := mocks.NewDeckService(t)
		svc.On("ListDecks", mock.Anything, uint(1)).Return([]*model.Deck{}, nil).Once()
		h := handlers.NewDeckHandler(svc, testLogger)

		rec := serve(t, http.MethodGet, "/users/{user_id}/decks", "/users/1/decks", h.ListDecks, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("ユーザーが存在しなければ 404", func(t *testing.T) {
		svc := mocks.NewDeckService(t)
		svc.On("CreateDeck", mock.Anything, uint(999), &model.CreateDeckRequest{Name: "d"}).
			Return(nil, fmt.Errorf("create deck: %w", model.ErrNotFound)).Once()
		h := handlers.NewDeckHandler(svc, testLogger)

		rec := serve(t, http.MethodPost, "/user_profile/{user_id}/decks", "/user_profile/999/decks", h.CreateDeck, map[string]string{"name": "d"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("カード一覧は senses を埋め込む", func(t *testing.T) {
		svc := mocks.NewDeckService(t)
		svc.On("ListCards", mock.Anything, uint(2)).Return([]model.CardResponse{
			{ID: 1, DeckID: 2, SenseID: 5, Senses: model.SenseText{Word: "hola", Translation: "hello"}},
		}, nil).Once()
		h := handlers.NewDeckHandler(svc, testLogger)

		rec := serve(t, http.MethodGet, "/decks/{deck_id}/cards", "/decks/2/cards", h.ListCards, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var cards []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
		require.Len(t, cards, 1)
		assert.Equal(t, map[string]interface{}{"word": "hola", "translation": "hello"}, cards[0]["senses"])
	})

	t.Run("カード作成は word と translation が必須", func(t *testing.T) {
		h := handlers.NewDeckHandler(mocks.NewDeckService(t), testLogger)

		rec := serve(t, http.MethodPost, "/decks/{deck_id}/cards", "/decks/2/cards", h.CreateCard, map[string]string{"word": "hola"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "translation", errorBody(t, rec).Field)
	})

	t.Run("カード作成", func(t *testing.T) {
		svc := mocks.NewDeckService(t)
		svc.On("CreateCard", mock.Anything, uint(2), &model.CreateCardRequest{Word: "hola", Translation: "hello"}).
			Return(&model.Card{ID: 9, DeckID: 2, SenseID: 5}, nil).Once()
		h := handlers.NewDeckHandler(svc, testLogger)

		rec := serve(t, http.MethodPost, "/decks/{deck_id}/cards", "/decks/2/cards", h.CreateCard,
			map[string]string{"word": "hola", "translation": "hello"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sense_id":5`)
	})
}

func TestSentenceHandler(t *testing.T) {
	const pattern = "/users/{user_id}/senses/{sense_id}/sentence_history"

	t.Run("正常系", func(t *testing.T) {
		svc := mocks.NewSentenceService(t)
		svc.On("GenerateSentence", mock.Anything, uint(1), uint(3), &model.GenerateSentenceRequest{Language: "Spanish"}).
			Return(&model.GenerateSentenceResponse{UserID: 1, SenseID: 3, Sentence: "Hola."}, nil).Once()
		h := handlers.NewSentenceHandler(svc, testLogger)

		rec := serve(t, http.MethodPost, pattern, "/users/1/senses/3/sentence_history", h.GenerateSentence, map[string]string{"language": "Spanish"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id": 1, "sense_id": 3, "sentence": "Hola."}`, rec.Body.String())
	})

	t.Run("生成失敗は 500", func(t *testing.T) {
		svc := mocks.NewSentenceService(t)
		svc.On("GenerateSentence", mock.Anything, uint(1), uint(3), mock.Anything).
			Return(nil, fmt.Errorf("generate sentence: %w: %v", model.ErrGeneration, errors.New("quota"))).Once()
		h := handlers.NewSentenceHandler(svc, testLogger)

		rec := serve(t, http.MethodPost, pattern, "/users/1/senses/3/sentence_history", h.GenerateSentence, map[string]string{"language": "Spanish"})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		detail := errorBody(t, rec)
		assert.Equal(t, "GENERATION_FAILED", detail.Code)
		assert.NotContains(t, detail.Message, "quota")
	})

	t.Run("sense_id が0なら 400", func(t *testing.T) {
		h := handlers.NewSentenceHandler(mocks.NewSentenceService(t), testLogger)

		rec := serve(t, http.MethodPost, pattern, "/users/1/senses/0/sentence_history", h.GenerateSentence, map[string]string{"language": "Spanish"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("履歴一覧に limit を渡す", func(t *testing.T) {
		svc := mocks.NewSentenceService(t)
		svc.On("ListSentenceHistory", mock.Anything, uint(1), uint(3), 2).
			Return([]*model.SentenceHistory{{ID: 2, Sentence: "b"}, {ID: 1, Sentence: "a"}}, nil).Once()
		h := handlers.NewSentenceHandler(svc, testLogger)

		rec := serve(t, http.MethodGet, pattern, "/users/1/senses/3/sentence_history?limit=2", h.ListSentenceHistory, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("limit が不正なら 400", func(t *testing.T) {
		h := handlers.NewSentenceHandler(mocks.NewSentenceService(t), testLogger)

		rec := serve(t, http.MethodGet, pattern, "/users/1/senses/3/sentence_history?limit=-1", h.ListSentenceHistory, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "limit", errorBody(t, rec).Field)
	})
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	rec := serve(t, http.MethodGet, "/health", "/health", handlers.NewHealthHandler(fakePinger{}, testLogger).Check, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = serve(t, http.MethodGet, "/health", "/health", handlers.NewHealthHandler(fakePinger{err: errors.New("down")}, testLogger).Check, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
