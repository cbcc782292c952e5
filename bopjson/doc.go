/*
 * doc.go, part of zpebop.
 *
 *
 * Copyright 2026 The zpebop developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package bopjson serializes zero-point energy results to JSON and
//reads them back. The on-disk layout follows the historical
//bopout.json format of the reference implementation, so results can
//be consumed by external analysis scripts regardless of which program
//produced them.
package bopjson
