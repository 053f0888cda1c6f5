// Package githubfake serves the subset of the GitHub REST API the pipeline uses.
package githubfake

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/go-github/v60/github"
	"github.com/gorilla/mux"
)

const diffMediaType = "application/vnd.github.v3.diff"

type Comment struct {
	Repo   string
	Number int
	Body   string
	Auth   string
}

type pull struct {
	pr   *github.PullRequest
	diff string
}

type Server struct {
	*httptest.Server

	mu    sync.Mutex
	pulls map[string]map[int]*pull

	Comments       []Comment
	Gists          []*github.Gist
	TokenExchanges map[int64]int

	FailGists          bool
	FailComments       bool
	FailDiffs          bool
	FailEdits          bool
	RevokedInstallIDs  map[int64]bool
	InstallationTokens map[int64]string
}

func NewServer() *Server {
	s := &Server{
		pulls:              map[string]map[int]*pull{},
		TokenExchanges:     map[int64]int{},
		RevokedInstallIDs:  map[int64]bool{},
		InstallationTokens: map[int64]string{},
	}

	r := mux.NewRouter()
	r.HandleFunc("/app/installations/{id}/access_tokens", s.createToken).Methods(http.MethodPost)
	r.HandleFunc("/repos/{owner}/{repo}/pulls", s.listPulls).Methods(http.MethodGet)
	r.HandleFunc("/repos/{owner}/{repo}/pulls/{number}", s.getPull).Methods(http.MethodGet)
	r.HandleFunc("/repos/{owner}/{repo}/pulls/{number}", s.editPull).Methods(http.MethodPatch)
	r.HandleFunc("/repos/{owner}/{repo}/issues/{number}/comments", s.createComment).Methods(http.MethodPost)
	r.HandleFunc("/gists", s.createGist).Methods(http.MethodPost)

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) AddPullRequest(fullName string, number int, headRef, diff string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pulls[fullName] == nil {
		s.pulls[fullName] = map[int]*pull{}
	}
	s.pulls[fullName][number] = &pull{
		pr: &github.PullRequest{
			Number:  github.Int(number),
			Title:   github.String(fmt.Sprintf("PR %d", number)),
			Body:    github.String("initial description"),
			State:   github.String("open"),
			HTMLURL: github.String(fmt.Sprintf("https://github.com/%s/pull/%d", fullName, number)),
			Head: &github.PullRequestBranch{
				Ref: github.String(headRef),
				SHA: github.String(fmt.Sprintf("sha-%s-%d", headRef, number)),
			},
			Base: &github.PullRequestBranch{Ref: github.String("main")},
		},
		diff: diff,
	}
}

func (s *Server) PullRequestBody(fullName string, number int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pulls[fullName][number]
	if p == nil {
		return ""
	}
	return p.pr.GetBody()
}

func (s *Server) CommentsSnapshot() []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Comment(nil), s.Comments...)
}

func (s *Server) TokenExchangesFor(installationID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.TokenExchanges[installationID]
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

func (s *Server) lookupPull(r *http.Request) (string, *pull) {
	vars := mux.Vars(r)
	fullName := vars["owner"] + "/" + vars["repo"]
	number, _ := strconv.Atoi(vars["number"])
	return fullName, s.pulls[fullName][number]
}

func (s *Server) createToken(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeError(w, http.StatusUnauthorized, "A JSON web token could not be decoded")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.TokenExchanges[id]++
	if s.RevokedInstallIDs[id] {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	token := fmt.Sprintf("ghs_installation_%d", id)
	s.InstallationTokens[id] = token
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"token":      token,
		"expires_at": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	})
}

func (s *Server) listPulls(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fullName := vars["owner"] + "/" + vars["repo"]

	s.mu.Lock()
	defer s.mu.Unlock()

	ret := []*github.PullRequest{}
	for _, p := range s.pulls[fullName] {
		if state := r.URL.Query().Get("state"); state == "" || state == p.pr.GetState() {
			ret = append(ret, p.pr)
		}
	}
	writeJSON(w, http.StatusOK, ret)
}

func (s *Server) getPull(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, p := s.lookupPull(r)
	if p == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	if r.Header.Get("Accept") == diffMediaType {
		if s.FailDiffs {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		w.Header().Set("Content-Type", diffMediaType)
		_, _ = w.Write([]byte(p.diff))
		return
	}

	writeJSON(w, http.StatusOK, p.pr)
}

func (s *Server) editPull(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, p := s.lookupPull(r)
	if p == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	if s.FailEdits {
		writeError(w, http.StatusForbidden, "Resource not accessible by integration")
		return
	}

	var req github.PullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Body != nil {
		p.pr.Body = req.Body
	}
	writeJSON(w, http.StatusOK, p.pr)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fullName, p := s.lookupPull(r)
	if p == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	if s.FailComments {
		writeError(w, http.StatusForbidden, "Resource not accessible by integration")
		return
	}

	var req github.IssueComment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.Comments = append(s.Comments, Comment{
		Repo:   fullName,
		Number: p.pr.GetNumber(),
		Body:   req.GetBody(),
		Auth:   r.Header.Get("Authorization"),
	})
	id := int64(len(s.Comments))
	writeJSON(w, http.StatusCreated, &github.IssueComment{
		ID:      github.Int64(id),
		Body:    req.Body,
		HTMLURL: github.String(fmt.Sprintf("%s#issuecomment-%d", p.pr.GetHTMLURL(), id)),
	})
}

func (s *Server) createGist(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailGists {
		writeError(w, http.StatusForbidden, "Resource not accessible by integration")
		return
	}

	var g github.Gist
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := fmt.Sprintf("gist%d", len(s.Gists)+1)
	g.ID = github.String(id)
	g.HTMLURL = github.String("https://gist.github.com/" + id)
	s.Gists = append(s.Gists, &g)
	writeJSON(w, http.StatusCreated, &g)
}
