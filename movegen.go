/*
movegen.go implements the legal move generator: pseudo-legal moves filtered
through the checkmask, the two pin masks, the danger map, and the en-passant
discovered-check test computed by analyzer.go.
*/

package chego

// Legal enumerates every legal move for the side to move. Position must have
// been refreshed (refreshMasks runs automatically after construction and
// after every MakeMove/UndoMove), so this is a single filtering pass with no
// further search.
func (p *Position) Legal() MoveList {
	var l MoveList

	us := p.Turn()
	them := 1 ^ us
	occ := p.Occupancy()
	en := p.ColorBB(them)
	em := ^occ
	king := p.KingSquare(us)

	// Rule 1: king moves. Safety comes solely from the danger map, which was
	// built with our king removed from the board.
	kingTargets := kingAttacks[king] &^ p.danger &^ p.ColorBB(us)
	l.Extend(king, kingTargets&en, Capture)
	l.Extend(king, kingTargets&em, Quiet)

	// Rule 2: double check -- only king moves are legal.
	if p.checkmask == 0 {
		return l
	}

	checkmask := p.checkmask
	pinHV := p.pinHV
	pinD12 := p.pinD12
	pinned := pinHV | pinD12

	// Rule 3: knights. A pinned knight can never move.
	knights := p.pieces[us][Knight] &^ pinned
	for knights != 0 {
		s := popLSB(&knights)
		targets := knightAttacks[s] & checkmask
		l.Extend(s, targets&en, Capture)
		l.Extend(s, targets&em, Quiet)
	}

	// Rule 4: orthogonal sliders (rook/queen).
	hvSliders := (p.pieces[us][Rook] | p.pieces[us][Queen]) &^ pinD12
	for bb := hvSliders; bb != 0; {
		s := popLSB(&bb)
		targets := lookupRookAttacks(s, occ) & checkmask
		if pinHV&(uint64(1)<<s) != 0 {
			targets &= pinHV
		}
		l.Extend(s, targets&en, Capture)
		l.Extend(s, targets&em, Quiet)
	}

	// Rule 5: diagonal sliders (bishop/queen).
	d12Sliders := (p.pieces[us][Bishop] | p.pieces[us][Queen]) &^ pinHV
	for bb := d12Sliders; bb != 0; {
		s := popLSB(&bb)
		targets := lookupBishopAttacks(s, occ) & checkmask
		if pinD12&(uint64(1)<<s) != 0 {
			targets &= pinD12
		}
		l.Extend(s, targets&en, Capture)
		l.Extend(s, targets&em, Quiet)
	}

	p.genPawnMoves(&l, us, them, occ, en, em, checkmask, pinHV, pinD12)
	p.genEnPassant(&l, us, them, occ, checkmask, pinHV, pinD12, king)

	// Rule 11: castling, only while not in check.
	if checkmask == ^uint64(0) {
		p.genCastling(&l, us, king)
	}

	return l
}

// genPawnMoves implements rules 6-9: single/double pushes (with the
// HV-pinned push variant) and captures/promotion-captures (with the
// D12-pinned capture variant).
func (p *Position) genPawnMoves(l *MoveList, us, them Color, occ, en, em, checkmask, pinHV, pinD12 uint64) {
	dir := relativeDir(8, us)
	promoRank := rank8
	startRank := rank2
	if us == ColorBlack {
		promoRank = rank1
		startRank = rank7
	}

	pawns := p.pieces[us][Pawn]
	for bb := pawns; bb != 0; {
		s := popLSB(&bb)
		sbb := uint64(1) << s
		isPinHV := pinHV&sbb != 0
		isPinD12 := pinD12&sbb != 0

		if !isPinD12 {
			fwd := s + dir
			if fwd >= 0 && fwd < 64 {
				fwdBB := uint64(1) << fwd
				if fwdBB&em != 0 {
					allowed := checkmask
					if isPinHV {
						allowed &= pinHV
					}
					if fwdBB&allowed != 0 {
						if fwdBB&promoRank != 0 {
							l.AddPromotions(s, fwd, false)
						} else {
							l.Add(s, fwd, Quiet)
						}
					}
					if sbb&startRank != 0 {
						dbl := s + 2*dir
						dblBB := uint64(1) << dbl
						if dblBB&em != 0 && dblBB&allowed != 0 {
							l.Add(s, dbl, DoublePush)
						}
					}
				}
			}
		}

		targets := pawnAttacks[us][s] & en
		if isPinHV {
			targets = 0
		} else if isPinD12 {
			targets &= pinD12
		}
		targets &= checkmask
		for targets != 0 {
			to := popLSB(&targets)
			if (uint64(1)<<to)&promoRank != 0 {
				l.AddPromotions(s, to, true)
			} else {
				l.Add(s, to, Capture)
			}
		}
	}
}

// genEnPassant implements rule 10, including the discovered-check test along
// the king's rank.
func (p *Position) genEnPassant(l *MoveList, us, them Color, occ, checkmask, pinHV, pinD12 uint64, king int) {
	ep := p.EPTarget()
	if ep == NoSquare {
		return
	}
	dir := relativeDir(8, us)
	capturedSq := ep - dir
	epBB := uint64(1) << ep

	capturers := pawnAttacks[them][ep] & p.pieces[us][Pawn]
	for capturers != 0 {
		s := popLSB(&capturers)
		sbb := uint64(1) << s
		if pinHV&sbb != 0 {
			continue
		}
		if pinD12&sbb != 0 {
			if epBB&pinD12&checkmask == 0 {
				continue
			}
			l.Add(s, ep, EnPassant)
			continue
		}

		if (epBB|uint64(1)<<capturedSq)&checkmask == 0 {
			continue
		}

		occAfter := occ &^ sbb &^ (uint64(1) << capturedSq)
		kingRank := king / 8
		discovered := false
		hvSliders := p.pieces[them][Rook] | p.pieces[them][Queen]
		for hvSliders != 0 {
			s2 := popLSB(&hvSliders)
			if s2/8 != kingRank {
				continue
			}
			if lookupRookAttacks(s2, occAfter)&(uint64(1)<<king) != 0 {
				discovered = true
				break
			}
		}
		if discovered {
			continue
		}
		l.Add(s, ep, EnPassant)
	}
}

// genCastling implements rule 11. idx ranges over {0: O-O, 1: O-O-O} for
// White, {2: O-O, 3: O-O-O} for Black.
func (p *Position) genCastling(l *MoveList, us Color, king int) {
	occ := p.Occupancy()
	base := 0
	short, long := CastleRightWK, CastleRightWQ
	if us == ColorBlack {
		base = 2
		short, long = CastleRightBK, CastleRightBQ
	}
	castling := p.Castling()

	if castling&short != 0 {
		idx := base
		if castlingEmptyMask[idx]&occ == 0 && castlingSafeMask[idx]&p.danger == 0 {
			l.Add(king, castlingKingTarget[idx], CastleShort)
		}
	}
	if castling&long != 0 {
		idx := base + 1
		if castlingEmptyMask[idx]&occ == 0 && castlingSafeMask[idx]&p.danger == 0 {
			l.Add(king, castlingKingTarget[idx], CastleLong)
		}
	}
}
