package uchar

import (
	"context"
	"unicode"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/cases"
)

// A folder performs simple case folding of single code-points.
//
// Package cases implements full case folding (CaseFolding.txt, status C+F).
// We need simple case folding (status C+S), as a character must never
// change into a sequence of characters, e.g. "ß" into "ss". Wherever the
// full folding of a code-point results in more than one code-point, we use
// its simple lower case mapping instead. This is identical to the status S
// mapping for all of these code-points except U+0130, which never gets here
// because canonical decomposition splits it into "I" and U+0307.
type folder struct {
	caser cases.Caser
}

func (f *folder) fold(r rune) rune {
	f.caser.Reset()
	s := f.caser.String(string(r))
	if fr, size := utf8.DecodeRuneInString(s); size == len(s) && fr != utf8.RuneError {
		return fr
	}
	return unicode.ToLower(r)
}

// Casers from package cases are stateful and may not be shared between
// goroutines. Characters are usually constructed in bursts (e.g., when
// indexing a new buffer), so we pool the folders.
type folderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalFolderPool *folderPool

func init() {
	globalFolderPool = &folderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &folder{caser: cases.Fold()}, nil
		})
	globalFolderPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalFolderPool.opool = pool.NewObjectPool(globalFolderPool.ctx, factory, config)
}

// borrowFolder returns a folder from the pool. Clients have to return it
// with releaseIntoPool().
func borrowFolder() *folder {
	o, err := globalFolderPool.opool.BorrowObject(globalFolderPool.ctx)
	if err != nil { // unbounded pool, should not happen
		CT().Errorf("cannot borrow case folder: %v", err)
		return &folder{caser: cases.Fold()}
	}
	return o.(*folder)
}

func (f *folder) releaseIntoPool() {
	_ = globalFolderPool.opool.ReturnObject(globalFolderPool.ctx, f)
}
