package ui

// ColorProvider adapts the active theme to the colour interface expected by
// the error handler.
type ColorProvider struct{}

// Red returns the error colour of the active theme.
func (ColorProvider) Red() string { return GetCurrentTheme().Error }

// Yellow returns the warning colour of the active theme.
func (ColorProvider) Yellow() string { return GetCurrentTheme().Warning }

// Reset returns the reset sequence of the active theme.
func (ColorProvider) Reset() string { return GetCurrentTheme().Reset }
