/*
Package glquad draws a single coloured quad with OpenGL.

# Overview

The package wraps the handful of GL objects the demo needs: a vertex
buffer, an index buffer, a vertex array and a shader program. Each wrapper
owns exactly one GL name and releases it once in Delete. Every GL call made
by a wrapper goes through the error shim (see Check and GL.Call), which
clears the GL error queue before the call and reports the first error
raised by it as a *CallError.

Native APIs are reached only through the Device, Window and Platform
interfaces. The backend/opengl package implements them with go-gl; tests
use in-memory fakes.

# Quick Start

	platform := opengl.NewGLFWPlatform()
	app := glquad.NewApp(platform, glquad.DefaultConfig())
	if err := app.Run(); err != nil {
	    log.Fatal(err)
	}

# Shader Files

A shader file holds both stages. A line containing "#shader vertex" or
"#shader fragment" starts a section; all following lines belong to it:

	#shader vertex
	#version 330 core
	layout(location = 0) in vec4 position;
	void main() { gl_Position = position; }

	#shader fragment
	#version 330 core
	layout(location = 0) out vec4 color;
	uniform vec4 u_Color;
	void main() { color = u_Color; }

Content before the first marker, a marker naming neither stage, or a file
without both stages is rejected by ParseShaderSource.

# Frame Loop

Step computes one frame from the previous FrameState and returns the
commands to run: clear, set u_Color, draw the indices, optionally retitle
the window with the frame rate, swap and poll. Executor applies them.
Keeping Step pure lets the loop be tested without a GL context.

# Errors

Failed GL calls are logged and returned. Pass WithFatalErrors(true) to
NewGL (or set fatal_gl_errors in the config) to panic on the first one
instead.
*/
package glquad
