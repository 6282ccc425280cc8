// Package plate converts plate bending and twisting moments into design
// moments for orthogonal or skew reinforcement.
//
// Sign convention follows the analysis program: positive moments put the
// bottom face in tension. Units are whatever the moments were exported in.
package plate
