// SPDX-License-Identifier: EPL-2.0

package geometry

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ serializes m as a Wavefront OBJ object named name.
// Vertices become "v" records, edges "l" records and faces "f"
// records, all using OBJ's 1-based indexing. The mesh is validated
// first so a malformed mesh never produces partial output records.
func WriteOBJ(w io.Writer, name string, m *Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	if name != "" {
		if _, err := fmt.Fprintf(bw, "o %s\n", name); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	for _, e := range m.Edges {
		if _, err := fmt.Fprintf(bw, "l %d %d\n", e[0]+1, e[1]+1); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	for _, f := range m.Faces {
		if _, err := bw.WriteString("f"); err != nil {
			return fmt.Errorf("%w", err)
		}
		for _, idx := range f {
			if _, err := fmt.Fprintf(bw, " %d", idx+1); err != nil {
				return fmt.Errorf("%w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
