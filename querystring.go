package ncloud

import (
	"net/url"
	"strings"
)

/*
当前文件提供 query string 的合并逻辑。

签名串里的 path+query 和请求实际上送的 request-target 必须逐字节一致，
所以合并的结果即最终上送的串，签名环节不再对它做任何改写。
*/

// Param 表示 query string 中的一个参数项。参数是有序的，用切片而不是 map 承载。
type Param struct {
	Name  string
	Value string
}

// SplitPathQuery 将“/a/b?x=1”形式的串拆分为路径和原始的 query string 两部分。
// query 部分不含“?”。没有 query 时返回空字符串。
func SplitPathQuery(pathWithQuery string) (path, rawQuery string) {
	idx := strings.IndexByte(pathWithQuery, '?')
	if idx < 0 {
		return pathWithQuery, ""
	}
	return pathWithQuery[:idx], pathWithQuery[idx+1:]
}

// MergeQuery 将显式给定的参数表合并进 pathWithQuery ，返回合并后的 path+query 。
//
// 合并规则：
//   - params 为空时，原样返回 pathWithQuery ，一个字节都不改动，也不会追加“?”。
//   - Path 中内嵌的参数保持原有位置和原有字节；被 params 覆盖的参数在原位置替换为新值，
//     同名的其余内嵌项被移除，保证合并结果里该名称只出现一次。
//   - params 中未命中内嵌参数的项，按给定顺序追加在末尾。
//   - params 中出现重复名称时，第一项用于覆盖，其余项按顺序追加。
//
// 被替换和追加的参数使用百分号转义（Percent-encoding）重新编码；未被覆盖的内嵌参数不做重编码。
func MergeQuery(pathWithQuery string, params []Param) string {
	if len(params) == 0 {
		return pathWithQuery
	}

	path, rawQuery := SplitPathQuery(pathWithQuery)

	consumed := make([]bool, len(params))
	overridden := make(map[string]bool)

	// 在 params 里查找第一个还没被用掉的同名项。
	pick := func(name string) (int, bool) {
		for i, p := range params {
			if !consumed[i] && p.Name == name {
				return i, true
			}
		}
		return -1, false
	}

	var parts []string
	if rawQuery != "" {
		for _, seg := range strings.Split(rawQuery, "&") {
			if seg == "" {
				continue
			}

			rawName := seg
			if idx := strings.IndexByte(seg, '='); idx >= 0 {
				rawName = seg[:idx]
			}

			// 解码失败的名称按原始字节参与匹配，相当于一个不透明的名称。
			name, err := url.QueryUnescape(rawName)
			if err != nil {
				name = rawName
			}

			if overridden[name] {
				// 同名参数已在首个位置被替换过，其余的移除。
				continue
			}

			if i, ok := pick(name); ok {
				consumed[i] = true
				overridden[name] = true
				parts = append(parts, encodeParam(params[i]))
				continue
			}

			parts = append(parts, seg)
		}
	}

	for i, p := range params {
		if consumed[i] {
			continue
		}
		parts = append(parts, encodeParam(p))
	}

	if len(parts) == 0 {
		return path
	}
	return path + "?" + strings.Join(parts, "&")
}

func encodeParam(p Param) string {
	return url.QueryEscape(p.Name) + "=" + url.QueryEscape(p.Value)
}
