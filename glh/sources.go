// SPDX-License-Identifier: GPL-2.0-or-later

package glh

// Default shader sources, written in legacy GLSL on purpose so they pass
// through the preprocessor like any user shader would.
const (
	DefaultVertexSource = `
attribute vec3 position;

uniform mat4 transform;
uniform mat4 modelview;
uniform mat4 projection;

void main() {
	gl_Position = projection * modelview * transform * vec4(position, 1.0);
}
`

	DefaultFragmentSource = `
uniform vec4 fill_color;

void main() {
	gl_FragColor = fill_color;
}
`
)
