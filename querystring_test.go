package ncloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPathQuery(t *testing.T) {
	t.Run("NoQuery", func(t *testing.T) {
		path, rawQuery := SplitPathQuery("/a/b")
		assert.Equal(t, "/a/b", path)
		assert.Equal(t, "", rawQuery)
	})

	t.Run("WithQuery", func(t *testing.T) {
		path, rawQuery := SplitPathQuery("/a/b?x=1&y=2")
		assert.Equal(t, "/a/b", path)
		assert.Equal(t, "x=1&y=2", rawQuery)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		path, rawQuery := SplitPathQuery("/a?")
		assert.Equal(t, "/a", path)
		assert.Equal(t, "", rawQuery)
	})

	t.Run("QuestionMarkInQuery", func(t *testing.T) {
		// 只在第一个“?”处拆分。
		path, rawQuery := SplitPathQuery("/a?x=1?y=2")
		assert.Equal(t, "/a", path)
		assert.Equal(t, "x=1?y=2", rawQuery)
	})
}

func TestMergeQuery(t *testing.T) {
	t.Run("NoParams", func(t *testing.T) {
		// 没有显式参数时原样返回，内嵌的转义一个字节都不能动。
		assert.Equal(t, "/a", MergeQuery("/a", nil))
		assert.Equal(t, "/a?x=1&x=1", MergeQuery("/a?x=1&x=1", nil))
		assert.Equal(t, "/a?v=%2F%3D", MergeQuery("/a?v=%2F%3D", []Param{}))
	})

	t.Run("Override", func(t *testing.T) {
		got := MergeQuery("/a?x=1", []Param{{"x", "2"}, {"y", "3"}})
		assert.Equal(t, "/a?x=2&y=3", got)
	})

	t.Run("OverrideInPlace", func(t *testing.T) {
		// 覆盖发生在参数的原有位置上。
		got := MergeQuery("/a?m=0&x=1&n=2", []Param{{"x", "9"}})
		assert.Equal(t, "/a?m=0&x=9&n=2", got)
	})

	t.Run("AppendKeepsOrder", func(t *testing.T) {
		got := MergeQuery("/a", []Param{{"b", "1"}, {"a", "2"}, {"c", "3"}})
		assert.Equal(t, "/a?b=1&a=2&c=3", got)
	})

	t.Run("DuplicateEmbedded", func(t *testing.T) {
		// 同名的内嵌参数只保留被覆盖的首个位置。
		got := MergeQuery("/a?x=1&y=5&x=2", []Param{{"x", "9"}})
		assert.Equal(t, "/a?x=9&y=5", got)
	})

	t.Run("DuplicateExplicit", func(t *testing.T) {
		// 显式参数表里的重复名称：第一项覆盖，其余追加。
		got := MergeQuery("/a?x=1", []Param{{"x", "2"}, {"x", "3"}})
		assert.Equal(t, "/a?x=2&x=3", got)
	})

	t.Run("EncodedName", func(t *testing.T) {
		// 内嵌参数名是转义过的，按解码后的名称匹配。
		got := MergeQuery("/a?%78=1", []Param{{"x", "9"}})
		assert.Equal(t, "/a?x=9", got)
	})

	t.Run("KeepRawWhenNotOverridden", func(t *testing.T) {
		got := MergeQuery("/a?X=%E4%B8%AD&y=1", []Param{{"y", "2"}})
		assert.Equal(t, "/a?X=%E4%B8%AD&y=2", got)
	})

	t.Run("EscapeAppended", func(t *testing.T) {
		got := MergeQuery("/a", []Param{{"q", "中文"}, {"s", "a b"}})
		assert.Equal(t, "/a?q=%E4%B8%AD%E6%96%87&s=a+b", got)
	})

	t.Run("NamelessSegment", func(t *testing.T) {
		// “?flag&x=1”里的 flag 是一个没有“=”的片段，名称即片段本身。
		got := MergeQuery("/a?flag&x=1", []Param{{"flag", "1"}})
		assert.Equal(t, "/a?flag=1&x=1", got)
	})

	t.Run("EmptySegments", func(t *testing.T) {
		got := MergeQuery("/a?&x=1&", []Param{{"y", "2"}})
		assert.Equal(t, "/a?x=1&y=2", got)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		got := MergeQuery("/a", []Param{{"x", ""}})
		assert.Equal(t, "/a?x=", got)
	})
}
