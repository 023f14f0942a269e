package util

import (
	"decafc/common"
	"strings"
)

func ASTString(node common.AstNode) string {
	var sb strings.Builder
	DumpAST(&sb, node)
	return sb.String()
}
