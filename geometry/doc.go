// Package geometry uploads vertex and index data into GPU buffers and
// provides the square and cube meshes drawn by the samples.
//
// Buffers are uploaded once with static usage and never modified. A Mesh
// groups the buffers of one shape with the topology and vertex count used
// to draw it:
//
//	cube, err := geometry.NewCube(ctx)
//	if err != nil {
//	    return err
//	}
//	defer cube.Release(ctx)
package geometry
