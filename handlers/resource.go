package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/internal/content"
	"github.com/seosites/seosites/backend/go-api/internal/store"
)

// resource serves the list/get/create/update/delete routes of one content type.
// With an empty deleted message, delete answers {success, data:{}}.
type resource[T any, PT content.Entity[T]] struct {
	svc     *content.Service[T, PT]
	deleted string
}

func newResource[T any, PT content.Entity[T]](svc *content.Service[T, PT], deleted string) *resource[T, PT] {
	return &resource[T, PT]{svc: svc, deleted: deleted}
}

func (r *resource[T, PT]) List(c *gin.Context) {
	items, err := r.svc.List(c.Request.Context(), store.Query{})
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (r *resource[T, PT]) Get(c *gin.Context) {
	d, err := r.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

func (r *resource[T, PT]) Create(c *gin.Context) {
	doc := new(T)
	if err := bindBody(c, doc); err != nil {
		fail(c, err)
		return
	}
	d, err := r.svc.Create(c.Request.Context(), doc)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, d)
}

// Update decodes the body over the stored document, so omitted fields keep their values.
func (r *resource[T, PT]) Update(c *gin.Context) {
	d, err := r.svc.Update(c.Request.Context(), c.Param("id"), func(cur *T) error {
		return bindBody(c, cur)
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

func (r *resource[T, PT]) Delete(c *gin.Context) {
	if _, err := r.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	if r.deleted == "" {
		ok(c, http.StatusOK, gin.H{})
		return
	}
	okMessage(c, r.deleted)
}

func (r *resource[T, PT]) register(rg *gin.RouterGroup, read, write, remove []gin.HandlerFunc) {
	rg.GET("", chain(read, r.List)...)
	rg.GET("/:id", chain(read, r.Get)...)
	rg.POST("", chain(write, r.Create)...)
	rg.PUT("/:id", chain(write, r.Update)...)
	rg.DELETE("/:id", chain(remove, r.Delete)...)
}

func chain(mw []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(mw)+1)
	return append(append(out, mw...), h)
}

func bindBody(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperr.BadRequest("Invalid request body: " + err.Error())
	}
	return nil
}
