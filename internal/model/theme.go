package model

// Theme 界面主题，存储键 theme（纯文本，非 JSON）
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme 未设置或存储值无法识别时使用
const DefaultTheme = ThemeDark

// Valid 是否为受支持的主题
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled 返回切换后的主题
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
