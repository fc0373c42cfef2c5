// Package render turns a laid-out grid into a static, self-contained
// schedule page.
//
// The page is a single HTML document with no runtime data dependencies:
// styling comes from Tailwind utility classes plus a small inline style
// block, one table row per day, one header cell per slot boundary, and a
// colspan cell per occupied block. Free slots render as bare <td></td>
// placeholders.
package render
