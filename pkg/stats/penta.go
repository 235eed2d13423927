// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import "math"

// pairScores are the points scored in each kind of game pair, from
// loss-loss to win-win.
var pairScores = [5]float64{0, 0.25, 0.5, 0.75, 1}

// PairElo is like Elo but works on game pair results, given as counts of
// loss-loss, loss-draw, draw-draw, win-draw, and win-win pairs. Every count
// is smoothed by half a pair.
func PairElo(pairs [5]int) (muMin float64, mu float64, muMax float64) {
	var N float64 // total number of pairs
	for _, count := range pairs {
		N += float64(count) + 0.5
	}

	// measured probability of each kind of pair
	var p [5]float64
	for i, count := range pairs {
		p[i] = (float64(count) + 0.5) / N
		mu += p[i] * pairScores[i]
	}

	var variance float64
	for i := range p {
		variance += p[i] * math.Pow(pairScores[i]-mu, 2)
	}

	// standard deviation of the random variable
	sigma := math.Sqrt(variance) / math.Sqrt(N)

	muMax = mu + phiInv(0.975)*sigma // upper bound
	muMin = mu + phiInv(0.025)*sigma // lower bound

	return clampElo(muMin), clampElo(mu), clampElo(muMax)
}
