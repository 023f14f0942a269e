package walk

import (
	"decafc/common"
)

func (w *Walker) walkMethodDecl(md *common.AstMethodDecl) {
	for _, param := range md.Params {
		w.declare(param.Symbol)
	}

	if md.Body != nil {
		w.walkBlock(md.Body)
	}
}
