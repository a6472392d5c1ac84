// Package shader compiles shader stages and links them into programs.
//
// Compile turns one Source into a Compiled stage; Link joins a vertex and
// a fragment stage into a Program and resolves the locations the pipeline
// feeds: attributes aVertexPosition and aVertexColor, uniforms
// uProjectionMatrix and uModelViewMatrix. A program may omit any of them;
// the missing ones are reported as gl.NoAttrib / gl.NoUniform, not as
// errors.
//
// Compiled stages never outlive linking: Link detaches and deletes them
// whether or not the link succeeds.
package shader
