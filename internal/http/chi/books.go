package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/bookshelf/book"
)

/*
* Representa o livro na camada web, por isso ele tem as tags json
 */
type bookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type descriptionRequest struct {
	Description *string `json:"description"`
}

/*
* Representa o livro na camada web
 */
type bookResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	ISBN        string `json:"isbn"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
}

type pageResponse struct {
	Items      []bookResponse `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
	Total      int            `json:"total"`
}

type statsResponse struct {
	Total      int            `json:"total"`
	Unread     int            `json:"unread"`
	Reading    int            `json:"reading"`
	Completed  int            `json:"completed"`
	ByCategory map[string]int `json:"byCategory"`
}

func (br bookRequest) form() book.Form {
	return book.Form{
		Title:       br.Title,
		Author:      br.Author,
		ISBN:        br.ISBN,
		Category:    br.Category,
		Status:      br.Status,
		Description: br.Description,
	}
}

func toResponse(b book.Book) bookResponse {
	return bookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Category:    b.Category.String(),
		Status:      b.Status.String(),
		ISBN:        b.ISBN,
		Description: b.Description,
		CoverImage:  b.CoverImage,
	}
}

func owner(r *http.Request) string {
	return markerFrom(r.Context()).Email
}

func bookID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func getBooks(bookService book.UseCase, pageSize int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := intParam(r, "page", 1)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page must be a number"})
			return
		}
		size, err := intParam(r, "page_size", pageSize)
		if err != nil || size < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page_size must be a positive number"})
			return
		}
		sort := r.URL.Query().Get("sort")
		switch sort {
		case book.SortNone, book.SortTitle, book.SortAuthor, book.SortNewest:
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "sort must be one of title, author, newest"})
			return
		}
		if page < 1 {
			page = 1
		}
		q := book.Query{
			Search:   r.URL.Query().Get("q"),
			Category: r.URL.Query().Get("category"),
			Status:   r.URL.Query().Get("status"),
			Sort:     sort,
			Page:     page,
			PageSize: size,
		}
		result, err := bookService.List(r.Context(), owner(r), q)
		if err != nil {
			writeError(w, r, err)
			return
		}
		// a filter change can leave the requested page past the end
		if q.Page > max(1, result.TotalPages) {
			q.Page = book.ClampPage(q.Page, result.TotalPages)
			result, err = bookService.List(r.Context(), owner(r), q)
			if err != nil {
				writeError(w, r, err)
				return
			}
		}
		items := make([]bookResponse, 0, len(result.Items))
		for _, b := range result.Items {
			items = append(items, toResponse(b))
		}
		writeJSON(w, http.StatusOK, pageResponse{
			Items:      items,
			Page:       q.Page,
			PageSize:   q.PageSize,
			TotalPages: result.TotalPages,
			Total:      result.Total,
		})
	})
}

func getBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := bookService.Get(r.Context(), owner(r), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(b))
	})
}

func postBooks(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := bookService.Create(r.Context(), owner(r), br.form())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(b))
	})
}

func putBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := bookService.Update(r.Context(), owner(r), id, br.form())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(b))
	})
}

func patchBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var dr descriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&dr); err != nil || dr.Description == nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "description is required"})
			return
		}
		b, err := bookService.SetDescription(r.Context(), owner(r), id, *dr.Description)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(b))
	})
}

// deleteBook is idempotent: removing a missing id still answers 204
func deleteBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := bookService.Delete(r.Context(), owner(r), id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func toggleStatus(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := bookService.ToggleStatus(r.Context(), owner(r), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(b))
	})
}

// putCover reads the multipart field "cover"
func putCover(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, book.MaxCoverSize+1<<20)
		file, _, err := r.FormFile("cover")
		if err != nil {
			var tooLarge *http.MaxBytesError
			msg := "cover file is required"
			if errors.As(err, &tooLarge) {
				msg = book.ErrCoverTooLarge.Error()
			}
			writeJSON(w, http.StatusBadRequest, fieldErrorsResponse{Errors: map[string]string{"coverImage": msg}})
			return
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, book.MaxCoverSize+1))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := bookService.SetCover(r.Context(), owner(r), id, book.CoverUpload{Data: data})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(b))
	})
}

func getStats(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, err := bookService.Stats(r.Context(), owner(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		byCategory := make(map[string]int, len(st.ByCategory))
		for c, n := range st.ByCategory {
			byCategory[c.String()] = n
		}
		writeJSON(w, http.StatusOK, statsResponse{
			Total:      st.Total,
			Unread:     st.ByStatus[book.Unread],
			Reading:    st.Reading(),
			Completed:  st.Completed(),
			ByCategory: byCategory,
		})
	})
}
