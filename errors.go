/*
 * errors.go, part of hefesto2xml.
 *
 * Copyright 2026 Sia Ghelichkhani
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package hefesto

import "fmt"

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows adding information to the error as it is passed up
// the call stack, without changing its type or wrapping it in something else.
// If passed an empty string, Decorate just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// MalformedRecordError means a parameter file does not have enough lines to
// cover the fixed 43-field layout. All translation stops on it.
type MalformedRecordError struct {
	ID    string //mineral whose file is broken
	Lines int    //lines actually present
	deco  []string
}

func (err *MalformedRecordError) Error() string {
	return fmt.Sprintf("hefesto: malformed parameter file for %q: %d lines, %d needed", err.ID, err.Lines, recordLines)
}

func (err *MalformedRecordError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// InvalidFieldError means a positional numeric field did not parse as a decimal
// number. It names the field and the (1-based) line it came from.
type InvalidFieldError struct {
	ID    string
	Field string
	Line  int
	Token string
	deco  []string
}

func (err *InvalidFieldError) Error() string {
	return fmt.Sprintf("hefesto: %s, line %d: field %s: can't parse %q as a number", err.ID, err.Line, err.Field, err.Token)
}

func (err *InvalidFieldError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FormulaSyntaxError means a chemical formula contains something the site
// notation does not allow.
type FormulaSyntaxError struct {
	Formula string
	Pos     int    //byte offset of the offending character
	Msg     string //overrides the default message when set
	deco    []string
}

func (err *FormulaSyntaxError) Error() string {
	if err.Msg != "" {
		return fmt.Sprintf("hefesto: formula %q: %s", err.Formula, err.Msg)
	}
	if err.Pos >= 0 && err.Pos < len(err.Formula) {
		return fmt.Sprintf("hefesto: formula %q: unexpected character %q at position %d", err.Formula, err.Formula[err.Pos], err.Pos)
	}
	return fmt.Sprintf("hefesto: formula %q: truncated formula", err.Formula)
}

func (err *FormulaSyntaxError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// IdentifierCollisionError means a solution phase would be emitted under an
// identifier some mineral already owns, and no override is registered for it.
type IdentifierCollisionError struct {
	PhaseID      string
	CollidesWith string
	deco         []string
}

func (err *IdentifierCollisionError) Error() string {
	return fmt.Sprintf("hefesto: solution phase %q collides with identifier %q and has no registered override", err.PhaseID, err.CollidesWith)
}

func (err *IdentifierCollisionError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// UnresolvedEndmemberError means an interaction file names an endmember for
// which no parameter file was parsed.
type UnresolvedEndmemberError struct {
	PhaseID   string
	Endmember string
	deco      []string
}

func (err *UnresolvedEndmemberError) Error() string {
	return fmt.Sprintf("hefesto: solution phase %q: endmember %q has no parameter file", err.PhaseID, err.Endmember)
}

func (err *UnresolvedEndmemberError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. Calling it on anything else is a bug
// and will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
